package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsmarsh/covreport/internal/cobertura"
	"github.com/tsmarsh/covreport/internal/config"
	"github.com/tsmarsh/covreport/internal/output"
	"github.com/tsmarsh/covreport/internal/report"
)

// ErrInputMissing is returned when the configured coverage document does
// not exist. The pipeline writes no report files in that case.
var ErrInputMissing = errors.New("coverage file not found")

// runAnalyze resolves configuration and flags, then runs the pipeline.
func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format := output.Format(cfg.Report.DataFormat)
	if formatOverride != "" {
		format, err = output.ParseFormat(formatOverride)
		if err != nil {
			return err
		}
	}

	return analyze(cmd.OutOrStdout(), cfg, format, verbose)
}

// analyze runs the parse-aggregate-format pipeline: read the coverage
// document, render the text report, serialize the model, write both report
// files, and print progress plus the full text report to stdout.
func analyze(stdout io.Writer, cfg *config.Config, format output.Format, verbose bool) error {
	input := cfg.Input.CoverageFile
	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(stdout, "Error: coverage file %s not found\n", input)
		fmt.Fprintln(stdout, "Run your coverage tool with Cobertura XML output first, e.g.:")
		fmt.Fprintln(stdout, "  cargo tarpaulin --out Xml --output-dir coverage")
		return ErrInputMissing
	}

	fmt.Fprintln(stdout, "Analyzing coverage data...")
	cov, err := cobertura.Parse(input)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to parse coverage data: %v\n", err)
		return err
	}
	if verbose {
		fileCount := 0
		for _, module := range cov.Modules {
			fileCount += len(module.Files)
		}
		fmt.Fprintf(stdout, "Parsed %d modules, %d files\n", len(cov.Modules), fileCount)
	}

	fmt.Fprintln(stdout, "Generating text report...")
	text := report.Generate(cov)

	fmt.Fprintf(stdout, "Generating %s report...\n", format)
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	data, err := formatter.Format(cov)
	if err != nil {
		return fmt.Errorf("serializing coverage report: %w", err)
	}

	if err := os.WriteFile(cfg.Report.TextPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	if err := os.WriteFile(cfg.Report.DataPath, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}

	fmt.Fprintln(stdout, "Coverage analysis complete!")
	fmt.Fprintln(stdout, "Reports generated:")
	fmt.Fprintf(stdout, "  %s (human-readable)\n", cfg.Report.TextPath)
	fmt.Fprintf(stdout, "  %s (machine-readable)\n", cfg.Report.DataPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, text)

	return nil
}
