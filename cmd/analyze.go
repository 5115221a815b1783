package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosas/internal/diagram"
	"github.com/alexiusacademia/gosas/internal/logging"
	"github.com/alexiusacademia/gosas/internal/report"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Inputs
	analyzeFlags     sectionFlags
	analyzeMaterial  string
	analyzeForce     float64
	analyzeMaxStrain float64
	analyzePoints    int

	// Output options
	analyzeDiagram bool
	analyzeCurve   bool
	analyzeOutput  string
	analyzeExport  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Stress and strain of a section under an axial force",
	Long: `Compute the axial response of a section:

  σ  = F / A                normal stress (MPa)
  ε  = σ / E                axial strain
  εl = -ν·ε                 lateral strain
  m  = ρ·A                  mass per unit length (kg/m)

Inputs not given as flags come from the config file or the defaults
(steel, 200x400mm rectangle, 50,000 N).

Examples:
  # Steel rectangle 200x400mm under 50 kN
  gosas analyze --material steel --shape rectangle -b 200 --height 400 --force 50000

  # Aluminum I-beam with sketch, terminal chart and exports
  gosas analyze -m aluminum -s I-beam -b 150 --height 300 -t 10 -e 6 -f 75000 \
      --diagram --curve -o curve.png --export curve.xlsx`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeMaterial, "material", "m", "", "Material: "+strings.Join(idNames(), ", "))
	analyzeFlags.register(analyzeCmd.Flags())
	analyzeCmd.Flags().Float64VarP(&analyzeForce, "force", "f", 0, "Applied axial force (N)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxStrain, "max-strain", stress.DefaultMaxStrain, "Largest strain of the stress-strain curve")
	analyzeCmd.Flags().IntVar(&analyzePoints, "points", stress.DefaultPoints, "Number of points of the stress-strain curve")

	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Print an ASCII sketch of the section")
	analyzeCmd.Flags().BoolVar(&analyzeCurve, "curve", false, "Print the stress-strain curve as a terminal chart")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export the stress-strain chart to an image file (.png, .svg, .pdf)")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Export the stress-strain curve to a .csv or .xlsx file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c := settings()
	log := logger.With(zap.String("request_id", uuid.NewString()))

	m, err := materialFlag(cmd, analyzeMaterial, c)
	if err != nil {
		return err
	}
	inst, err := analyzeFlags.instance(cmd, c)
	if err != nil {
		log.Debug("invalid section", zap.Error(err))
		return err
	}
	force := floatFlag(cmd, "force", analyzeForce, c.Force)

	res, err := stress.Analyze(stress.Input{Material: m, Section: inst, Force: force})
	if err != nil {
		log.Debug("analysis failed", zap.Error(err))
		return err
	}
	log.Info("analysis", append(logging.Section(inst), logging.Result(res)...)...)

	curve, err := res.Curve(
		floatFlag(cmd, "max-strain", analyzeMaxStrain, c.Curve.MaxStrain),
		intFlag(cmd, "points", analyzePoints, c.Curve.Points),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Banner(out, "AXIAL STRESS & STRAIN ANALYSIS")

	if err := report.Block(out, "MATERIAL", report.Material(m)); err != nil {
		return err
	}
	if analyzeDiagram {
		fmt.Fprintln(out, diagram.SectionArt(inst.Shape))
		fmt.Fprintln(out)
	}
	if err := report.Block(out, "SECTION", dimensionLines(inst)); err != nil {
		return err
	}
	if err := report.Block(out, "RESULTS", report.Result(res)); err != nil {
		return err
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("AXIAL RESPONSE", []string{
		fmt.Sprintf("σ = %s MPa", report.Number(res.Stress, 4)),
		fmt.Sprintf("ε = %.6e", res.Strain),
	}))
	fmt.Fprintln(out)

	printWarnings(cmd, warnOutOfRange(inst, force, true))

	if analyzeCurve {
		fmt.Fprintln(out, "STRESS-STRAIN CURVE:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		fmt.Fprintln(out, diagram.CurveChart(curve, 50, 10))
		fmt.Fprintln(out)
	}

	return exportCurve(cmd, curve, m, res, analyzeOutput, analyzeExport)
}
