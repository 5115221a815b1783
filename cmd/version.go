package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosas/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosas",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Structural Stress & Strain Analyzer")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
