package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "210,000", Number(210000, 0))
	assert.Equal(t, "80,000.00", Number(80000, 2))
	assert.Equal(t, "0.6250", Number(0.625, 4))
}

func TestMaterial(t *testing.T) {
	m, err := material.Get(material.Steel)
	require.NoError(t, err)

	lines := Material(m)
	assert.Equal(t, Line{"Name", "Mild Steel"}, lines[0])
	assert.Equal(t, Line{"Young's Modulus", "210,000 MPa"}, lines[1])
	assert.Equal(t, Line{"Poisson's Ratio", "0.3"}, lines[3])
	assert.Equal(t, Line{"Density", "7,850 kg/m³"}, lines[4])
}

func TestResult(t *testing.T) {
	m, err := material.Get(material.Steel)
	require.NoError(t, err)
	res, err := stress.Compute(m, 80000, 50000)
	require.NoError(t, err)

	lines := Result(res)
	assert.Equal(t, "80,000.00 mm²", lines[0].Value)
	assert.Equal(t, "50,000 N", lines[1].Value)
	assert.Equal(t, "0.6250 MPa", lines[2].Value)
	assert.Equal(t, "2.976190e-06", lines[3].Value)
}

func TestBlock(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "AXIAL STRESS ANALYSIS")
	require.NoError(t, Block(&buf, "RESULTS", []Line{
		{"Area", "80,000.00 mm²"},
		{"Stress", "0.6250 MPa"},
	}))

	out := buf.String()
	assert.Contains(t, out, "     AXIAL STRESS ANALYSIS\n")
	assert.Contains(t, out, "RESULTS:\n")

	lines := strings.Split(out, "\n")
	var area, stress string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "  Area:"):
			area = l
		case strings.HasPrefix(l, "  Stress:"):
			stress = l
		}
	}
	require.NotEmpty(t, area)
	require.NotEmpty(t, stress)
	// values share a column
	assert.Equal(t, strings.Index(area, "80,000"), strings.Index(stress, "0.6250"))
}
