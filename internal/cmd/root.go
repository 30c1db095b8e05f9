// Package cmd contains the CLI commands for covreport.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the current version of covreport
	Version = "0.1.0"

	// Global flags
	verbose        bool
	configPath     string
	formatOverride string
)

// rootCmd represents the base command. Running covreport with no arguments
// executes the full analyze pipeline.
var rootCmd = &cobra.Command{
	Use:   "covreport",
	Short: "Analyze Cobertura coverage reports",
	Long: `covreport parses a Cobertura XML coverage report and generates a
human-readable text report plus a machine-readable document.

The pipeline reads the coverage document, aggregates line and branch
statistics per module and per file, and writes two report files:

  coverage_report.txt    text report (module breakdown, per-file detail,
                         status labels, low-coverage attention list)
  coverage_report.json   the full coverage model for programmatic use

Paths and the machine-readable format can be changed in covreport.yaml:

  input:
    coverage_file: coverage/cobertura.xml
  report:
    text_path: coverage_report.txt
    data_path: coverage_report.json
    data_format: json

Examples:
  covreport                      # analyze coverage/cobertura.xml
  covreport --format yaml        # emit YAML instead of JSON
  covreport --config ci.yaml     # use an alternate config file`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runAnalyze,
}

// Execute runs the root command. This is called by main.main().
// It exits with status 1 when the pipeline fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: covreport.yaml)")
	rootCmd.Flags().StringVar(&formatOverride, "format", "", "Machine-readable output format (json|yaml), overrides config")

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// normalizeFlagName accepts underscores in flag names as an alias for
// dashes, so --data_format and --data-format spell the same flag.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
