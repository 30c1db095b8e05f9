// Package report renders a coverage model as a plain-text analysis report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsmarsh/covreport/internal/cobertura"
)

// Status labels assigned to individual files and to the overall summary.
const (
	StatusExcellent = "EXCELLENT"
	StatusGood      = "GOOD"
	StatusNeedsWork = "NEEDS WORK"
)

// Threshold percentages for status labels. These are fixed policy values,
// not configuration.
const (
	fileExcellentThreshold    = 90.0
	fileGoodThreshold         = 70.0
	overallExcellentThreshold = 80.0
	overallGoodThreshold      = 60.0
	attentionThreshold        = 50.0
)

const (
	bannerWidth  = 80
	sectionWidth = 40
)

// FileStatus returns the status label for a file's line coverage percentage.
// Boundaries are inclusive: exactly 90.0 is EXCELLENT, exactly 70.0 is GOOD.
func FileStatus(percent float64) string {
	switch {
	case percent >= fileExcellentThreshold:
		return StatusExcellent
	case percent >= fileGoodThreshold:
		return StatusGood
	default:
		return StatusNeedsWork
	}
}

// OverallStatus returns the status label for the overall line coverage
// percentage. Boundaries are inclusive: exactly 80.0 is EXCELLENT, exactly
// 60.0 is GOOD.
func OverallStatus(percent float64) string {
	switch {
	case percent >= overallExcellentThreshold:
		return StatusExcellent
	case percent >= overallGoodThreshold:
		return StatusGood
	default:
		return StatusNeedsWork
	}
}

// Generate renders the full text report for a coverage model. It is pure:
// no I/O, the result is the report lines joined with newlines.
func Generate(r *cobertura.Report) string {
	var lines []string

	lines = append(lines, strings.Repeat("=", bannerWidth))
	lines = append(lines, "COVERAGE ANALYSIS REPORT")
	lines = append(lines, strings.Repeat("=", bannerWidth))
	lines = append(lines, "")

	lines = append(lines, overallSection(r)...)
	lines = append(lines, moduleSection(r)...)
	lines = append(lines, fileSection(r)...)
	lines = append(lines, summarySection(r)...)

	return strings.Join(lines, "\n")
}

func overallSection(r *cobertura.Report) []string {
	return []string{
		"OVERALL COVERAGE STATISTICS",
		strings.Repeat("-", sectionWidth),
		fmt.Sprintf("Total Lines:          %d", r.TotalLines),
		fmt.Sprintf("Covered Lines:        %d", r.CoveredLines),
		fmt.Sprintf("Line Coverage:        %.1f%%", r.LinePercent()),
		fmt.Sprintf("Total Branches:       %d", r.TotalBranches),
		fmt.Sprintf("Covered Branches:     %d", r.CoveredBranches),
		fmt.Sprintf("Branch Coverage:      %.1f%%", r.BranchRate*100),
		"",
	}
}

// moduleSection lists modules by descending line rate. The sort is stable so
// equal-rate modules keep their input order.
func moduleSection(r *cobertura.Report) []string {
	lines := []string{
		"MODULE COVERAGE BREAKDOWN",
		strings.Repeat("-", sectionWidth),
	}

	modules := make([]cobertura.Module, len(r.Modules))
	copy(modules, r.Modules)
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].LineRate > modules[j].LineRate
	})

	for _, module := range modules {
		lines = append(lines, fmt.Sprintf("Module: %s", module.Name))
		lines = append(lines, fmt.Sprintf("  Line Coverage:   %.1f%%", module.LineRate*100))
		lines = append(lines, fmt.Sprintf("  Branch Coverage: %.1f%%", module.BranchRate*100))
		lines = append(lines, fmt.Sprintf("  Complexity:      %.1f", module.Complexity))
		lines = append(lines, "")
	}

	return lines
}

// fileSection flattens files across all modules and lists them by ascending
// line rate, lowest coverage first, so problem files lead the section.
func fileSection(r *cobertura.Report) []string {
	lines := []string{
		"DETAILED FILE COVERAGE",
		strings.Repeat("-", sectionWidth),
	}

	files := flattenFiles(r)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].LineRate < files[j].LineRate
	})

	for _, file := range files {
		lines = append(lines, fmt.Sprintf("File: %s", file.Name))
		lines = append(lines, fmt.Sprintf("  Module:          %s", file.Module))
		lines = append(lines, fmt.Sprintf("  Line Coverage:   %.1f%% %s", file.LinePercent(), FileStatus(file.LinePercent())))
		lines = append(lines, fmt.Sprintf("  Lines:           %d/%d", file.CoveredLines, file.Lines))
		lines = append(lines, fmt.Sprintf("  Branch Coverage: %.1f%%", file.BranchRate*100))
		lines = append(lines, fmt.Sprintf("  Complexity:      %.1f", file.Complexity))
		lines = append(lines, "")
	}

	return lines
}

func summarySection(r *cobertura.Report) []string {
	lines := []string{
		"SUMMARY & RECOMMENDATIONS",
		strings.Repeat("-", sectionWidth),
	}

	overall := r.LinePercent()
	switch OverallStatus(overall) {
	case StatusExcellent:
		lines = append(lines, "EXCELLENT: Overall coverage is very good!")
	case StatusGood:
		lines = append(lines, "GOOD: Overall coverage is decent but could be improved")
	default:
		lines = append(lines, "NEEDS WORK: Overall coverage needs significant improvement")
	}

	lines = append(lines, fmt.Sprintf("Current overall line coverage: %.1f%%", overall))

	// Attention list keeps the original file order, not the sorted order.
	var attention []cobertura.FileEntry
	for _, file := range flattenFiles(r) {
		if file.LinePercent() < attentionThreshold {
			attention = append(attention, file)
		}
	}

	if len(attention) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Files needing attention (< %.0f%% coverage):", attentionThreshold))
		for _, file := range attention {
			lines = append(lines, fmt.Sprintf("  - %s: %.1f%%", file.Name, file.LinePercent()))
		}
	}

	return lines
}

// flattenFiles collects every file from every module in input order.
func flattenFiles(r *cobertura.Report) []cobertura.FileEntry {
	var files []cobertura.FileEntry
	for _, module := range r.Modules {
		files = append(files, module.Files...)
	}
	return files
}
