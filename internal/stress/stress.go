// Package stress derives uniaxial stress and strain from an axial force
// acting on a cross-section, assuming linear-elastic behavior (Hooke's law).
//
// Units: area in mm², force in N, stress and modulus in MPa.
package stress

import (
	"math"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
)

const (
	mm2ToM2 = 1e-6 // mm² to m²
	paToMPa = 1e-6 // Pa to MPa
)

// Default sample curve, matching the stress-strain chart of the interactive tools
const (
	DefaultMaxStrain = 0.004
	DefaultPoints    = 5
)

// ForceLimit is the input range offered for the applied force (N)
var ForceLimit = section.Limit{Min: 1000, Max: 1000000, Default: 50000}

// Result holds the outcome of an axial stress computation
type Result struct {
	Material material.Material

	Area  float64 // mm²
	Force float64 // N

	StressPa      float64 // Pa
	Stress        float64 // MPa
	Strain        float64 // axial strain
	LateralStrain float64 // -ν·ε
	MassPerLength float64 // kg/m
}

// Curve returns the linear-elastic sample series for the result's material
func (r *Result) Curve(maxStrain float64, n int) (Curve, error) {
	return SampleCurve(r.Material, maxStrain, n)
}

// Input is one computation request: a material, a section and an axial force
type Input struct {
	Material material.Material
	Section  section.Instance
	Force    float64 // N
}

// Analyze computes the section area and the resulting stress and strain
func Analyze(in Input) (*Result, error) {
	area, err := in.Section.Area()
	if err != nil {
		return nil, err
	}
	return Compute(in.Material, area, in.Force)
}

// Compute returns the axial stress and strain caused by force (N) acting on
// area (mm²) of material m
func Compute(m material.Material, area, force float64) (*Result, error) {
	if area == 0 {
		return nil, &DivisionByZeroError{Quantity: "area"}
	}
	if math.IsNaN(area) || math.IsInf(area, 0) || area < 0 {
		return nil, &InvalidInputError{Field: "area", Value: area, Constraint: "must be a finite positive number (mm²)"}
	}
	if math.IsNaN(force) || math.IsInf(force, 0) || force <= 0 {
		return nil, &InvalidInputError{Field: "force", Value: force, Constraint: "must be a finite positive number (N)"}
	}
	if m.Young == 0 {
		return nil, &DivisionByZeroError{Quantity: "elastic modulus"}
	}
	if m.Young < 0 || math.IsNaN(m.Young) {
		return nil, &InvalidInputError{Field: "elastic modulus", Value: m.Young, Constraint: "must be positive (MPa)"}
	}

	// N/mm² is MPa. StressPa is carried through SI units (N / m²) and agrees
	// with the shortcut to floating-point tolerance.
	stressMPa := force / area
	stressPa := force / (area * mm2ToM2)

	if math.IsInf(stressMPa, 0) || math.IsNaN(stressMPa) {
		return nil, &InvalidInputError{Field: "area", Value: area, Constraint: "too small for the applied force"}
	}

	strain := stressMPa / m.Young

	return &Result{
		Material:      m,
		Area:          area,
		Force:         force,
		StressPa:      stressPa,
		Stress:        stressMPa,
		Strain:        strain,
		LateralStrain: -m.Poisson * strain,
		MassPerLength: m.Density * area * mm2ToM2,
	}, nil
}

// StressMPa converts the SI stress back to MPa
func (r *Result) StressMPa() float64 {
	return r.StressPa * paToMPa
}
