package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCurve exports the stress-strain sample of m to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else gets ".png" appended.
// If res is not nil its working point is marked on the line.
func ExportCurve(c stress.Curve, m material.Material, res *stress.Result, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Stress-Strain Curve: %s", m.Name)
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Stress (MPa)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, c.Len())
	for i, s := range c.Points() {
		pts[i] = plotter.XY{X: s.Strain, Y: s.Stress}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = parseHexColor(m.Color, color.RGBA{R: 0, G: 0, B: 139, A: 255})
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)
	p.Legend.Add(fmt.Sprintf("E = %.0f MPa", m.Young), line)

	if res != nil {
		working, err := plotter.NewScatter(plotter.XYs{{X: res.Strain, Y: res.Stress}})
		if err != nil {
			return err
		}
		working.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		working.GlyphStyle.Radius = vg.Points(5)
		working.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(working)
		p.Legend.Add(fmt.Sprintf("σ = %.4g MPa", res.Stress), working)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSection exports the outline of a section instance to an image file
func ExportSection(inst section.Instance, filename string) error {
	loops, err := inst.Outline()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cross Section: %s", inst.Shape)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	rings := make([]plotter.XYer, len(loops))
	for i, loop := range loops {
		xys := make(plotter.XYs, len(loop))
		for j, pt := range loop {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		rings[i] = xys
	}

	// holes are wound opposite to the outer boundary
	poly, err := plotter.NewPolygon(rings...)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	// keep the aspect ratio readable for slender sections
	minX, minY, maxX, maxY := section.Bounds(loops)
	span := maxX - minX
	if h := maxY - minY; h > span {
		span = h
	}
	margin := span * 0.1
	p.X.Min, p.X.Max = minX-margin, minX+span+margin
	p.Y.Min, p.Y.Max = minY-margin, minY+span+margin

	area, err := inst.Area()
	if err != nil {
		return err
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: minX, Y: maxY + margin/2}},
		Labels: []string{fmt.Sprintf("A = %.1f mm²", area)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// parseHexColor parses "#rrggbb", returning fallback on malformed input
func parseHexColor(s string, fallback color.Color) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
