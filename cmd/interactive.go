package cmd

import (
	"github.com/alexiusacademia/gosas/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Interactive terminal shell",
	Long: `Pick a material and a section, enter the dimensions and the force,
and read the material card, section sketch, results and curve on one screen.

The shell starts from the configured material, section, dimensions and force.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	opts, err := shellOptions()
	if err != nil {
		return err
	}
	return tui.Run(opts)
}

// shellOptions seeds the shell from the configuration
func shellOptions() (tui.Options, error) {
	c := settings()
	id, err := c.MaterialID()
	if err != nil {
		return tui.Options{}, err
	}
	shape, err := c.Shape()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Material:   id,
		Shape:      shape,
		Dimensions: c.DimensionsFor(shape),
		Force:      c.Force,
		MaxStrain:  c.Curve.MaxStrain,
		Points:     c.Curve.Points,
	}, nil
}
