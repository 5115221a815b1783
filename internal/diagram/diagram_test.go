package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steelCurve(t *testing.T) (stress.Curve, material.Material) {
	t.Helper()
	m, err := material.Get(material.Steel)
	require.NoError(t, err)
	c, err := stress.SampleCurve(m, stress.DefaultMaxStrain, stress.DefaultPoints)
	require.NoError(t, err)
	return c, m
}

func TestSectionArt(t *testing.T) {
	for _, s := range section.Shapes() {
		art := SectionArt(s)
		assert.NotEmpty(t, art, s.String())
		assert.False(t, strings.HasPrefix(art, "\n"))
		for _, p := range section.RequiredDimensions(s) {
			assert.Contains(t, art, string(p), "%s art should label %s", s, p)
		}
	}
	assert.Empty(t, SectionArt(section.Shape(99)))
}

func TestCurveChart(t *testing.T) {
	c, _ := steelCurve(t)
	chart := CurveChart(c, 40, 8)
	assert.Contains(t, chart, "840")
	assert.Contains(t, chart, "Stress (MPa)")
	assert.GreaterOrEqual(t, strings.Count(chart, "\n"), 8)
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULTS", []string{"Area = 80,000 mm²", "σ = 0.625 MPa"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestExportCurve(t *testing.T) {
	c, m := steelCurve(t)
	res, err := stress.Compute(m, 80000, 50000)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"curve.png", "nested/curve.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportCurve(c, m, res, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	require.NoError(t, ExportCurve(c, m, nil, filepath.Join(dir, "plain")))
	assert.FileExists(t, filepath.Join(dir, "plain.png"))
}

func TestExportSection(t *testing.T) {
	dir := t.TempDir()
	for _, s := range section.Shapes() {
		inst, err := section.NewInstance(s, section.Defaults(s))
		require.NoError(t, err)

		path := filepath.Join(dir, strings.ReplaceAll(s.String(), " ", "_")+".svg")
		require.NoError(t, ExportSection(inst, path))
		assert.FileExists(t, path)
	}

	bad := section.Instance{Shape: section.Circle, Dimensions: section.Dimensions{}}
	assert.Error(t, ExportSection(bad, filepath.Join(dir, "bad.png")))
}

func TestParseHexColor(t *testing.T) {
	fallback := parseHexColor("nope", nil)
	assert.Nil(t, fallback)
	assert.NotNil(t, parseHexColor("#b3cde0", nil))
}
