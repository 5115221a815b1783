// Package cmd implements the gosas command line. Inputs come from flags,
// GOSAS_* environment variables and an optional .gosas.yaml file, in that
// order of precedence.
package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosas/internal/config"
	"github.com/alexiusacademia/gosas/internal/logging"
	"github.com/alexiusacademia/gosas/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()

	newLogger = logging.New
)

var rootCmd = &cobra.Command{
	Use:   "gosas",
	Short: "Structural Stress & Strain Analyzer",
	Long: `gosas - Go Structural Stress & Strain Analyzer

A CLI tool for the axial stress and strain response of common
structural cross sections.

This tool helps engineers:
  - Look up elastic properties of steel, aluminum and timber
  - Compute the area of I-beam, T-beam, rectangular and circular sections
  - Compute stress, strain and lateral strain under an axial force
  - Plot and export the linear-elastic stress-strain curve

Defaults can be set in .gosas.yaml or with GOSAS_* environment variables.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRun,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gosas v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Structural Stress & Strain Analyzer                  ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Material registry: mild steel, aluminum alloys, timber")
		fmt.Fprintln(out, "    • Section areas: I-beam, T-beam, rectangle, circle and hollow shapes")
		fmt.Fprintln(out, "    • Axial stress, strain and lateral strain")
		fmt.Fprintln(out, "    • Stress-strain curve charts and CSV/Excel export")
		fmt.Fprintln(out, "    • Interactive terminal shell")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gosas --help' to see available commands.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .gosas.yaml, can also use GOSAS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

// initRun loads the configuration and builds the logger before any command runs
func initRun(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c

	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = l
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", zap.String("file", used))
	}
	return nil
}

// settings returns the loaded configuration, or the built-in defaults when
// a command runs without the root pre-run
func settings() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}
