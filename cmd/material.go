package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/report"
	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Elastic properties of the supported materials",
	Long: `List and inspect the materials known to gosas.

Subcommands:
  list  - Table of every material
  show  - Material card of one material

Available identifiers: ` + strings.Join(idNames(), ", "),
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported materials",
	Args:  cobra.NoArgs,
	RunE:  runMaterialList,
}

var materialShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the properties of one material",
	Long: `Show the material card: name, Young's modulus, shear modulus,
Poisson's ratio and density.

Examples:
  gosas material show steel
  gosas material show aluminum`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: idNames(),
	RunE:      runMaterialShow,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)
}

func idNames() []string {
	ids := material.List()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func runMaterialList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	report.Banner(out, "MATERIALS")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tName\tE (MPa)\tν\tρ (kg/m³)")
	fmt.Fprintln(w, "  ──\t────\t───────\t─\t─────────")
	for _, m := range material.All() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%g\t%s\n",
			m.ID, m.Name, report.Number(m.Young, 0), m.Poisson, report.Number(m.Density, 0))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	m, err := material.Lookup(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Banner(out, "MATERIAL: "+strings.ToUpper(m.Name))
	return report.Block(out, "PROPERTIES", report.Material(m))
}
