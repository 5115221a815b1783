package stress

import (
	"testing"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCurveSteel(t *testing.T) {
	c, err := SampleCurve(mustMaterial(t, material.Steel), 0.004, 5)
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	assert.Equal(t, []float64{0, 210, 420, 630, 840}, c.Stresses())

	want := []float64{0, 0.001, 0.002, 0.003, 0.004}
	if diff := cmp.Diff(want, c.Strains(), cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("strains mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveIsRestartable(t *testing.T) {
	c, err := SampleCurve(mustMaterial(t, material.Timber), 0.01, 11)
	require.NoError(t, err)

	collect := func() []Point {
		var out []Point
		for strain, stress := range c.All() {
			out = append(out, Point{Strain: strain, Stress: stress})
		}
		return out
	}

	first := collect()
	second := collect()
	require.Len(t, first, 11)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second traversal differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(c.Points(), first); diff != "" {
		t.Errorf("Points differs from All (-points +all):\n%s", diff)
	}

	assert.Equal(t, 0.0, first[0].Strain)
	assert.Equal(t, 0.01, first[10].Strain)
	for _, p := range first {
		assert.InDelta(t, p.Strain*11000, p.Stress, 1e-9)
	}
}

func TestCurveEarlyStop(t *testing.T) {
	c, err := SampleCurve(mustMaterial(t, material.Steel), 0.004, 5)
	require.NoError(t, err)

	n := 0
	for range c.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSampleCurveInvalid(t *testing.T) {
	steel := mustMaterial(t, material.Steel)

	tests := []struct {
		name      string
		m         material.Material
		maxStrain float64
		n         int
	}{
		{"zero max strain", steel, 0, 5},
		{"negative max strain", steel, -0.1, 5},
		{"one point", steel, 0.004, 1},
		{"no modulus", material.Material{}, 0.004, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleCurve(tt.m, tt.maxStrain, tt.n)
			var inErr *InvalidInputError
			assert.ErrorAs(t, err, &inErr)
		})
	}
}

func TestResultCurve(t *testing.T) {
	res, err := Compute(mustMaterial(t, material.Aluminum), 1000, 1000)
	require.NoError(t, err)

	c, err := res.Curve(DefaultMaxStrain, DefaultPoints)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 69, 138, 207, 276}, c.Stresses())
}
