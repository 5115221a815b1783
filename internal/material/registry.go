package material

import "strings"

// Reference materials, in registration order.
// Values are typical for structural use, not design values.
var registry = []Material{
	{
		ID:      Steel,
		Name:    "Mild Steel",
		Density: 7850,
		Young:   210000,
		Poisson: 0.3,
		Color:   "#b3cde0",
	},
	{
		ID:      Aluminum,
		Name:    "Aluminum Alloys",
		Density: 2700,
		Young:   69000,
		Poisson: 0.33,
		Color:   "#d9d9d9",
	},
	{
		ID:      Timber,
		Name:    "Timber",
		Density: 600, // typical softwood
		Young:   11000,
		Poisson: 0.3,
		Color:   "#c2b280",
	},
}

var (
	order []ID
	byID  map[ID]int
)

func init() {
	order = make([]ID, len(registry))
	byID = make(map[ID]int, len(registry))
	for i, m := range registry {
		order[i] = m.ID
		byID[m.ID] = i
	}
}

// Get returns the material registered under id
func Get(id ID) (Material, error) {
	i, ok := byID[id]
	if !ok {
		return Material{}, &UnknownMaterialError{ID: string(id)}
	}
	return registry[i], nil
}

// Lookup resolves a user-supplied identifier such as " Steel " and returns the material
func Lookup(s string) (Material, error) {
	id, err := ParseID(s)
	if err != nil {
		return Material{}, err
	}
	return Get(id)
}

// ParseID normalizes s and checks it against the registry
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := byID[id]; !ok {
		return "", &UnknownMaterialError{ID: s}
	}
	return id, nil
}

// List returns the registered identifiers in registration order
func List() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// All returns every registered material in registration order
func All() []Material {
	out := make([]Material, len(registry))
	copy(out, registry)
	return out
}
