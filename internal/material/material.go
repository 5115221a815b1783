package material

import (
	"fmt"
	"strings"
)

// ID identifies a material in the registry
type ID string

const (
	Steel    ID = "steel"
	Aluminum ID = "aluminum"
	Timber   ID = "timber"
)

// Material holds the physical properties of a structural material
type Material struct {
	ID   ID
	Name string

	Density float64 // kg/m³
	Young   float64 // Elastic (Young's) modulus (MPa)
	Poisson float64 // Poisson's ratio

	// Display only
	Color string // hex, e.g. "#b3cde0"
}

// ShearModulus returns G = E / 2(1 + ν) in MPa
func (m Material) ShearModulus() float64 {
	return m.Young / (2 * (1 + m.Poisson))
}

// UnknownMaterialError is returned when an identifier is not in the registry
type UnknownMaterialError struct {
	ID string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q (available: %s)", e.ID, strings.Join(idStrings(), ", "))
}

func idStrings() []string {
	out := make([]string, len(order))
	for i, id := range order {
		out[i] = string(id)
	}
	return out
}
