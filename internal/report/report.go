// Package report formats materials and computation results for display.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/stress"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Line is one labelled value of a report block
type Line struct {
	Label string
	Value string
}

var printer = message.NewPrinter(language.English)

// Number formats v with thousands separators and the given decimals.
// Exponents and ratios go through fmt; the printer localizes only grouping.
func Number(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Material describes m the way the material card shows it
func Material(m material.Material) []Line {
	return []Line{
		{"Name", m.Name},
		{"Young's Modulus", Number(m.Young, 0) + " MPa"},
		{"Shear Modulus", Number(m.ShearModulus(), 0) + " MPa"},
		{"Poisson's Ratio", fmt.Sprintf("%g", m.Poisson)},
		{"Density", Number(m.Density, 0) + " kg/m³"},
	}
}

// Result describes the section response
func Result(res *stress.Result) []Line {
	return []Line{
		{"Area", Number(res.Area, 2) + " mm²"},
		{"Applied Force", Number(res.Force, 0) + " N"},
		{"Stress", Number(res.Stress, 4) + " MPa"},
		{"Strain", fmt.Sprintf("%.6e", res.Strain)},
		{"Lateral Strain", fmt.Sprintf("%.6e", res.LateralStrain)},
		{"Mass per Length", Number(res.MassPerLength, 2) + " kg/m"},
	}
}

const width = 63

// Banner writes a title between double rules
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("═", width)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// Block writes a headed block of aligned label/value lines
func Block(w io.Writer, heading string, lines []Line) error {
	fmt.Fprintf(w, "%s:\n", heading)
	fmt.Fprintln(w, strings.Repeat("─", width))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(tw, "  %s:\t%s\n", l.Label, l.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
