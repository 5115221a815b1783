package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosas/internal/diagram"
	"github.com/alexiusacademia/gosas/internal/export"
	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/report"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	curveMaterial  string
	curveMaxStrain float64
	curvePoints    int
	curveOutput    string
	curveExport    string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Linear-elastic stress-strain curve of a material",
	Long: `Sample σ = E·ε at evenly spaced strains from 0 to the maximum strain.

Examples:
  # Steel at the default 5 points up to ε = 0.004
  gosas curve --material steel

  # Timber, 11 points, chart and spreadsheet
  gosas curve -m timber --points 11 -o timber.svg --export timber.xlsx`,
	Args: cobra.NoArgs,
	RunE: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVarP(&curveMaterial, "material", "m", "", "Material: "+strings.Join(idNames(), ", "))
	curveCmd.Flags().Float64Var(&curveMaxStrain, "max-strain", stress.DefaultMaxStrain, "Largest strain of the curve")
	curveCmd.Flags().IntVar(&curvePoints, "points", stress.DefaultPoints, "Number of sample points (at least 2)")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the chart to an image file (.png, .svg, .pdf)")
	curveCmd.Flags().StringVar(&curveExport, "export", "", "Export the samples to a .csv or .xlsx file")
}

func runCurve(cmd *cobra.Command, args []string) error {
	c := settings()

	m, err := materialFlag(cmd, curveMaterial, c)
	if err != nil {
		return err
	}
	curve, err := stress.SampleCurve(m,
		floatFlag(cmd, "max-strain", curveMaxStrain, c.Curve.MaxStrain),
		intFlag(cmd, "points", curvePoints, c.Curve.Points),
	)
	if err != nil {
		return err
	}
	logger.Info("curve", zap.String("material", string(m.ID)),
		zap.Float64("max_strain", curve.MaxStrain()), zap.Int("points", curve.Len()))

	out := cmd.OutOrStdout()
	report.Banner(out, "STRESS-STRAIN CURVE: "+strings.ToUpper(m.Name))
	fmt.Fprintf(out, "  E = %s MPa\n\n", report.Number(m.Young, 0))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Strain\tStress (MPa)")
	fmt.Fprintln(w, "  ──────\t────────────")
	for strain, sigma := range curve.All() {
		fmt.Fprintf(w, "  %.6f\t%s\n", strain, report.Number(sigma, 2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, diagram.CurveChart(curve, 50, 10))
	fmt.Fprintln(out)

	return exportCurve(cmd, curve, m, nil, curveOutput, curveExport)
}

// exportCurve writes the optional chart image and data file
func exportCurve(cmd *cobra.Command, curve stress.Curve, m material.Material, res *stress.Result, image, data string) error {
	out := cmd.OutOrStdout()
	if image != "" {
		if err := diagram.ExportCurve(curve, m, res, image); err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		fmt.Fprintf(out, "  Chart exported to: %s\n", image)
	}
	if data != "" {
		if err := export.WriteCurve(data, curve, m, res); err != nil {
			return fmt.Errorf("export curve: %w", err)
		}
		fmt.Fprintf(out, "  Curve exported to: %s\n", data)
	}
	return nil
}
