package report

import (
	"strings"
	"testing"

	"github.com/tsmarsh/covreport/internal/cobertura"
)

func TestFileStatusBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100.0, StatusExcellent},
		{90.0, StatusExcellent},
		{89.9, StatusGood},
		{70.0, StatusGood},
		{69.9, StatusNeedsWork},
		{0.0, StatusNeedsWork},
	}

	for _, tt := range tests {
		if got := FileStatus(tt.percent); got != tt.want {
			t.Errorf("FileStatus(%.1f) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestOverallStatusBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100.0, StatusExcellent},
		{80.0, StatusExcellent},
		{79.9, StatusGood},
		{60.0, StatusGood},
		{59.9, StatusNeedsWork},
		{0.0, StatusNeedsWork},
	}

	for _, tt := range tests {
		if got := OverallStatus(tt.percent); got != tt.want {
			t.Errorf("OverallStatus(%.1f) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestGenerateOverallStatistics(t *testing.T) {
	r := &cobertura.Report{
		TotalLines:      200,
		CoveredLines:    150,
		LineRate:        0.75,
		TotalBranches:   40,
		CoveredBranches: 30,
		BranchRate:      0.75,
	}

	text := Generate(r)

	for _, want := range []string{
		"COVERAGE ANALYSIS REPORT",
		"Total Lines:          200",
		"Covered Lines:        150",
		"Line Coverage:        75.0%",
		"Total Branches:       40",
		"Covered Branches:     30",
		"Branch Coverage:      75.0%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateModuleSortDescendingStable(t *testing.T) {
	r := &cobertura.Report{
		Modules: []cobertura.Module{
			{Name: "low", LineRate: 0.25},
			{Name: "tie_first", LineRate: 0.5},
			{Name: "tie_second", LineRate: 0.5},
			{Name: "high", LineRate: 0.75},
		},
	}

	text := Generate(r)

	order := []string{"Module: high", "Module: tie_first", "Module: tie_second", "Module: low"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		if idx == -1 {
			t.Fatalf("report missing %q", marker)
		}
		if idx <= last {
			t.Errorf("%q appears out of order", marker)
		}
		last = idx
	}
}

func TestGenerateFileSortAscendingAcrossModules(t *testing.T) {
	r := &cobertura.Report{
		Modules: []cobertura.Module{
			{
				Name: "a",
				Files: []cobertura.FileEntry{
					{Name: "a/high.rs", Module: "a", LineRate: 0.75},
					{Name: "a/tie_first.rs", Module: "a", LineRate: 0.5},
				},
			},
			{
				Name: "b",
				Files: []cobertura.FileEntry{
					{Name: "b/tie_second.rs", Module: "b", LineRate: 0.5},
					{Name: "b/low.rs", Module: "b", LineRate: 0.25},
				},
			},
		},
	}

	text := Generate(r)

	// Lowest coverage first; ties keep input order regardless of module.
	order := []string{"File: b/low.rs", "File: a/tie_first.rs", "File: b/tie_second.rs", "File: a/high.rs"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		if idx == -1 {
			t.Fatalf("report missing %q", marker)
		}
		if idx <= last {
			t.Errorf("%q appears out of order", marker)
		}
		last = idx
	}
}

func TestGenerateAttentionListBoundary(t *testing.T) {
	r := &cobertura.Report{
		Modules: []cobertura.Module{
			{
				Name: "m",
				Files: []cobertura.FileEntry{
					{Name: "m/at_half.rs", Module: "m", LineRate: 0.5},
					{Name: "m/below.rs", Module: "m", LineRate: 0.499},
				},
			},
		},
	}

	text := Generate(r)

	if !strings.Contains(text, "Files needing attention") {
		t.Fatal("expected attention list")
	}
	if !strings.Contains(text, "  - m/below.rs: 49.9%") {
		t.Error("file at 49.9% should appear in attention list")
	}
	if strings.Contains(text, "  - m/at_half.rs") {
		t.Error("file at exactly 50.0% should not appear in attention list")
	}
}

func TestGenerateAttentionListKeepsInputOrder(t *testing.T) {
	r := &cobertura.Report{
		Modules: []cobertura.Module{
			{
				Name: "m",
				Files: []cobertura.FileEntry{
					{Name: "m/second_lowest.rs", Module: "m", LineRate: 0.25},
					{Name: "m/lowest.rs", Module: "m", LineRate: 0.125},
				},
			},
		},
	}

	text := Generate(r)

	first := strings.Index(text, "  - m/second_lowest.rs: 25.0%")
	second := strings.Index(text, "  - m/lowest.rs: 12.5%")
	if first == -1 || second == -1 {
		t.Fatalf("attention entries missing:\n%s", text)
	}
	if first > second {
		t.Error("attention list should keep input order, not sorted order")
	}
}

func TestGenerateNoAttentionListWhenAllCovered(t *testing.T) {
	r := &cobertura.Report{
		LineRate: 0.875,
		Modules: []cobertura.Module{
			{
				Name:  "m",
				Files: []cobertura.FileEntry{{Name: "m/lib.rs", Module: "m", LineRate: 0.875}},
			},
		},
	}

	text := Generate(r)

	if strings.Contains(text, "Files needing attention") {
		t.Error("no attention list expected when every file is at or above 50%")
	}
}

func TestGenerateSummaryLabels(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0.875, "EXCELLENT: Overall coverage is very good!"},
		{0.625, "GOOD: Overall coverage is decent but could be improved"},
		{0.25, "NEEDS WORK: Overall coverage needs significant improvement"},
	}

	for _, tt := range tests {
		text := Generate(&cobertura.Report{LineRate: tt.rate})
		if !strings.Contains(text, tt.want) {
			t.Errorf("rate %.3f: report missing %q", tt.rate, tt.want)
		}
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	r := &cobertura.Report{
		TotalLines:   100,
		CoveredLines: 45,
		LineRate:     0.45,
		Modules: []cobertura.Module{
			{
				Name:     "core",
				LineRate: 0.45,
				Files: []cobertura.FileEntry{
					{
						Name:         "core/lib",
						Module:       "core",
						LineRate:     0.45,
						Lines:        100,
						CoveredLines: 45,
					},
				},
			},
		},
	}

	text := Generate(r)

	for _, want := range []string{
		"File: core/lib",
		"  Lines:           45/100",
		"NEEDS WORK",
		"  - core/lib: 45.0%",
		"Current overall line coverage: 45.0%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}
