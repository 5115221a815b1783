package stress

import (
	"iter"
	"math"

	"github.com/alexiusacademia/gosas/internal/material"
)

// Point is one (strain, stress) sample; stress in MPa
type Point struct {
	Strain float64
	Stress float64
}

// Curve is an evenly spaced sample of the linear-elastic stress-strain line.
// It holds no samples; every traversal recomputes them, so it can be read
// any number of times and shared between goroutines.
type Curve struct {
	young     float64
	maxStrain float64
	n         int
}

// SampleCurve samples n points from strain 0 to maxStrain inclusive with
// stress = strain · E
func SampleCurve(m material.Material, maxStrain float64, n int) (Curve, error) {
	if math.IsNaN(maxStrain) || math.IsInf(maxStrain, 0) || maxStrain <= 0 {
		return Curve{}, &InvalidInputError{Field: "max strain", Value: maxStrain, Constraint: "must be a finite positive number"}
	}
	if n < 2 {
		return Curve{}, &InvalidInputError{Field: "number of points", Value: float64(n), Constraint: "must be at least 2"}
	}
	if m.Young <= 0 {
		return Curve{}, &InvalidInputError{Field: "elastic modulus", Value: m.Young, Constraint: "must be positive"}
	}
	return Curve{young: m.Young, maxStrain: maxStrain, n: n}, nil
}

// Len returns the number of samples
func (c Curve) Len() int {
	return c.n
}

// MaxStrain returns the last sampled strain
func (c Curve) MaxStrain() float64 {
	return c.maxStrain
}

// At returns sample i, 0 <= i < Len()
func (c Curve) At(i int) Point {
	frac := float64(i) / float64(c.n-1)
	// Scale the end-point stress rather than multiplying each strain by E so
	// that round moduli produce round stresses.
	return Point{
		Strain: c.maxStrain * frac,
		Stress: c.young * c.maxStrain * float64(i) / float64(c.n-1),
	}
}

// All yields (strain, stress) pairs in increasing strain order
func (c Curve) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := 0; i < c.n; i++ {
			p := c.At(i)
			if !yield(p.Strain, p.Stress) {
				return
			}
		}
	}
}

// Points materializes the samples
func (c Curve) Points() []Point {
	out := make([]Point, c.n)
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// Strains and Stresses return the sample columns
func (c Curve) Strains() []float64 {
	out := make([]float64, c.n)
	for i := range out {
		out[i] = c.At(i).Strain
	}
	return out
}

func (c Curve) Stresses() []float64 {
	out := make([]float64, c.n)
	for i := range out {
		out[i] = c.At(i).Stress
	}
	return out
}
