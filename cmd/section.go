package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosas/internal/diagram"
	"github.com/alexiusacademia/gosas/internal/logging"
	"github.com/alexiusacademia/gosas/internal/report"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	areaFlags   sectionFlags
	areaDiagram bool
	areaOutput  string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section shapes and areas",
	Long: `Inspect the supported cross-section shapes and compute their areas.

Subcommands:
  shapes  - Shapes, their parameters and input ranges
  area    - Area of a section given by flags or a definition file

Example definition file (section.yaml):
  name: W-beam
  shape: I-beam
  dimensions:
    b: 200
    h: 400
    t: 10
    e: 8`,
}

var sectionShapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the supported shapes and their parameters",
	Args:  cobra.NoArgs,
	RunE:  runSectionShapes,
}

var sectionAreaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the cross-sectional area of a section",
	Long: `Compute the cross-sectional area (mm²) of a section.

Parameters:
  I-beam, T-beam      b width, h height, t flange thickness, e web thickness
  Rectangle           b width, h height
  Hollow Rectangle    b width, h height, t side wall, e top/bottom wall
  Circle              r radius
  Hollow Circle       r outer radius, e wall thickness

Examples:
  # 200x400mm rectangle
  gosas section area --shape rectangle -b 200 --height 400

  # Hollow circle with an ASCII sketch and an outline plot
  gosas section area -s "hollow circle" -r 100 -e 5 --diagram -o tube.png

  # From a definition file
  gosas section area --file section.yaml`,
	Args: cobra.NoArgs,
	RunE: runSectionArea,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionShapesCmd)
	sectionCmd.AddCommand(sectionAreaCmd)

	areaFlags.register(sectionAreaCmd.Flags())
	sectionAreaCmd.Flags().BoolVar(&areaDiagram, "diagram", false, "Print an ASCII sketch of the shape")
	sectionAreaCmd.Flags().StringVarP(&areaOutput, "output", "o", "", "Export the section outline to an image file (.png, .svg, .pdf)")
}

func runSectionShapes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	report.Banner(out, "SECTION SHAPES")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Shape\tParameter\tRange (mm)\tDefault")
	fmt.Fprintln(w, "  ─────\t─────────\t──────────\t───────")
	for _, s := range section.Shapes() {
		name := s.String()
		for _, p := range section.RequiredDimensions(s) {
			l, _ := section.InputLimit(s, p)
			fmt.Fprintf(w, "  %s\t%s\t%g – %g\t%g\n", name, s.Label(p), l.Min, l.Max, l.Default)
			name = ""
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

func runSectionArea(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("request_id", uuid.NewString()))

	inst, err := areaFlags.instance(cmd, settings())
	if err != nil {
		log.Debug("invalid section", zap.Error(err))
		return err
	}
	area, err := inst.Area()
	if err != nil {
		return err
	}
	log.Info("section area", append(logging.Section(inst), zap.Float64("area_mm2", area))...)

	out := cmd.OutOrStdout()
	report.Banner(out, "SECTION AREA: "+strings.ToUpper(inst.Shape.String()))

	if areaDiagram {
		fmt.Fprintln(out, diagram.SectionArt(inst.Shape))
		fmt.Fprintln(out)
	}

	if err := report.Block(out, "DIMENSIONS", dimensionLines(inst)); err != nil {
		return err
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("SECTION AREA", []string{
		fmt.Sprintf("A = %s mm²", report.Number(area, 2)),
	}))
	fmt.Fprintln(out)

	printWarnings(cmd, warnOutOfRange(inst, 0, false))

	if areaOutput != "" {
		if err := diagram.ExportSection(inst, areaOutput); err != nil {
			return fmt.Errorf("export section: %w", err)
		}
		fmt.Fprintf(out, "  Section outline exported to: %s\n\n", areaOutput)
	}
	return nil
}

func dimensionLines(inst section.Instance) []report.Line {
	params := section.RequiredDimensions(inst.Shape)
	lines := make([]report.Line, 0, len(params)+1)
	lines = append(lines, report.Line{Label: "Shape", Value: inst.Shape.String()})
	for _, p := range params {
		lines = append(lines, report.Line{
			Label: inst.Shape.Label(p),
			Value: report.Number(inst.Dimensions[p], 1) + " mm",
		})
	}
	return lines
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "WARNINGS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	for _, w := range warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", w)
		logger.Warn("input outside usual range", zap.String("detail", w))
	}
	fmt.Fprintln(out)
}
