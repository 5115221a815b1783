package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosas/internal/config"
	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// sectionFlags are the section inputs shared by commands that take a section
type sectionFlags struct {
	shape string
	file  string
	dims  map[section.Param]*float64
}

// dimensionFlag names the flag of each parameter; -h is taken by help
var dimensionFlag = []struct {
	param section.Param
	name  string
	short string
	usage string
}{
	{section.ParamB, "width", "b", "Width b (mm)"},
	{section.ParamH, "height", "", "Height h (mm)"},
	{section.ParamT, "flange", "t", "Flange or side wall thickness t (mm)"},
	{section.ParamE, "web", "e", "Web or wall thickness e (mm)"},
	{section.ParamR, "radius", "r", "Outer radius r (mm)"},
}

func (f *sectionFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.shape, "shape", "s", "", "Section shape: I-beam, T-beam, Rectangle, Hollow Rectangle, Circle, Hollow Circle")
	fs.StringVar(&f.file, "file", "", "Section definition file (.yaml or .json)")

	f.dims = make(map[section.Param]*float64, len(dimensionFlag))
	for _, d := range dimensionFlag {
		f.dims[d.param] = fs.Float64P(d.name, d.short, 0, d.usage)
	}
}

// instance builds the section from the definition file, or from the shape
// and dimensions of the config overridden by the flags set on cmd
func (f *sectionFlags) instance(cmd *cobra.Command, c *config.Config) (section.Instance, error) {
	fs := cmd.Flags()
	if f.file != "" {
		def, inst, err := section.LoadFromFile(f.file)
		if err != nil {
			return section.Instance{}, err
		}
		logger.Debug("section loaded", zap.String("file", f.file), zap.String("name", def.Name))
		return inst, nil
	}

	name := c.Section
	if fs.Changed("shape") {
		name = f.shape
	}
	shape, err := section.ParseShape(name)
	if err != nil {
		return section.Instance{}, err
	}

	dims := c.DimensionsFor(shape)
	for _, d := range dimensionFlag {
		if fs.Changed(d.name) {
			dims[d.param] = *f.dims[d.param]
		}
	}
	return section.NewInstance(shape, dims)
}

// materialFlag resolves the material flag against the config
func materialFlag(cmd *cobra.Command, value string, c *config.Config) (material.Material, error) {
	id := c.Material
	if cmd.Flags().Changed("material") {
		id = value
	}
	return material.Lookup(id)
}

// floatFlag returns value when the flag is set on cmd and fallback otherwise
func floatFlag(cmd *cobra.Command, name string, value, fallback float64) float64 {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// warnOutOfRange lists inputs outside the ranges the interactive shell offers
func warnOutOfRange(inst section.Instance, force float64, checkForce bool) []string {
	var out []string
	for _, p := range section.OutOfRange(inst.Shape, inst.Dimensions) {
		l, _ := section.InputLimit(inst.Shape, p)
		out = append(out, fmt.Sprintf("%s = %g mm is outside the usual range %g – %g mm",
			inst.Shape.Label(p), inst.Dimensions[p], l.Min, l.Max))
	}
	if checkForce && !stress.ForceLimit.Contains(force) {
		out = append(out, fmt.Sprintf("Applied force = %g N is outside the usual range %g – %g N",
			force, stress.ForceLimit.Min, stress.ForceLimit.Max))
	}
	return out
}
