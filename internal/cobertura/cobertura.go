// Package cobertura parses Cobertura XML coverage reports into a plain
// coverage model that the report and output packages consume.
package cobertura

import (
	"encoding/xml"
	"os"
)

// Report holds the aggregate coverage statistics and the per-module
// breakdown parsed from a Cobertura document. Rates are fractions in [0,1];
// counts are the raw lines-valid/lines-covered style totals from the input.
type Report struct {
	TotalLines      int      `yaml:"total_lines" json:"total_lines"`
	CoveredLines    int      `yaml:"covered_lines" json:"covered_lines"`
	LineRate        float64  `yaml:"line_rate" json:"line_rate"`
	TotalBranches   int      `yaml:"total_branches" json:"total_branches"`
	CoveredBranches int      `yaml:"covered_branches" json:"covered_branches"`
	BranchRate      float64  `yaml:"branch_rate" json:"branch_rate"`
	Modules         []Module `yaml:"modules" json:"modules"`
}

// Module is a logical grouping of source files, mapped from a <package>
// element. Modules keep the order they appear in the input.
type Module struct {
	Name       string      `yaml:"name" json:"name"`
	LineRate   float64     `yaml:"line_rate" json:"line_rate"`
	BranchRate float64     `yaml:"branch_rate" json:"branch_rate"`
	Complexity float64     `yaml:"complexity" json:"complexity"`
	Files      []FileEntry `yaml:"files" json:"files"`
}

// FileEntry is the coverage record for a single source file, mapped from a
// <class> element. Module is the name of the enclosing module.
type FileEntry struct {
	Name            string  `yaml:"name" json:"name"`
	Module          string  `yaml:"module" json:"module"`
	LineRate        float64 `yaml:"line_rate" json:"line_rate"`
	BranchRate      float64 `yaml:"branch_rate" json:"branch_rate"`
	Complexity      float64 `yaml:"complexity" json:"complexity"`
	Lines           int     `yaml:"lines" json:"lines"`
	CoveredLines    int     `yaml:"covered_lines" json:"covered_lines"`
	Branches        int     `yaml:"branches" json:"branches"`
	CoveredBranches int     `yaml:"covered_branches" json:"covered_branches"`
}

// LinePercent returns the overall line coverage as a percentage.
func (r *Report) LinePercent() float64 {
	return r.LineRate * 100
}

// LinePercent returns the file's line coverage as a percentage.
func (f FileEntry) LinePercent() float64 {
	return f.LineRate * 100
}

// unknownName is used when a package or class omits its name attribute.
const unknownName = "unknown"

// Wire structs for the Cobertura XML schema. Numeric attributes that are
// absent decode to their zero values, which matches the "missing means zero"
// contract; only malformed values produce an error.
type coverageXML struct {
	XMLName         xml.Name     `xml:"coverage"`
	LinesValid      int          `xml:"lines-valid,attr"`
	LinesCovered    int          `xml:"lines-covered,attr"`
	LineRate        float64      `xml:"line-rate,attr"`
	BranchesValid   int          `xml:"branches-valid,attr"`
	BranchesCovered int          `xml:"branches-covered,attr"`
	BranchRate      float64      `xml:"branch-rate,attr"`
	Packages        []packageXML `xml:"packages>package"`
}

type packageXML struct {
	Name       string     `xml:"name,attr"`
	LineRate   float64    `xml:"line-rate,attr"`
	BranchRate float64    `xml:"branch-rate,attr"`
	Complexity float64    `xml:"complexity,attr"`
	Classes    []classXML `xml:"classes>class"`
}

type classXML struct {
	Filename        string  `xml:"filename,attr"`
	LineRate        float64 `xml:"line-rate,attr"`
	BranchRate      float64 `xml:"branch-rate,attr"`
	Complexity      float64 `xml:"complexity,attr"`
	LinesValid      int     `xml:"lines-valid,attr"`
	LinesCovered    int     `xml:"lines-covered,attr"`
	BranchesValid   int     `xml:"branches-valid,attr"`
	BranchesCovered int     `xml:"branches-covered,attr"`
}

// Parse reads the Cobertura XML document at path and returns the coverage
// model. It returns a *FileReadError if the file cannot be read and a
// *ParseError if the document is malformed.
func Parse(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return parseDocument(path, data)
}

// parseDocument decodes the raw XML bytes and maps them to the model.
func parseDocument(path string, data []byte) (*Report, error) {
	var doc coverageXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	report := &Report{
		TotalLines:      doc.LinesValid,
		CoveredLines:    doc.LinesCovered,
		LineRate:        doc.LineRate,
		TotalBranches:   doc.BranchesValid,
		CoveredBranches: doc.BranchesCovered,
		BranchRate:      doc.BranchRate,
		Modules:         make([]Module, 0, len(doc.Packages)),
	}

	for _, pkg := range doc.Packages {
		name := pkg.Name
		if name == "" {
			name = unknownName
		}

		module := Module{
			Name:       name,
			LineRate:   pkg.LineRate,
			BranchRate: pkg.BranchRate,
			Complexity: pkg.Complexity,
			Files:      make([]FileEntry, 0, len(pkg.Classes)),
		}

		for _, class := range pkg.Classes {
			filename := class.Filename
			if filename == "" {
				filename = unknownName
			}

			module.Files = append(module.Files, FileEntry{
				Name:            filename,
				Module:          name,
				LineRate:        class.LineRate,
				BranchRate:      class.BranchRate,
				Complexity:      class.Complexity,
				Lines:           class.LinesValid,
				CoveredLines:    class.LinesCovered,
				Branches:        class.BranchesValid,
				CoveredBranches: class.BranchesCovered,
			})
		}

		report.Modules = append(report.Modules, module)
	}

	return report, nil
}
