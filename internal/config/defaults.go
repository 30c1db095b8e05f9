package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields. The paths match the fixed
// locations used by tarpaulin-based coverage workflows.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			CoverageFile: "coverage/cobertura.xml",
		},
		Report: ReportConfig{
			TextPath:   "coverage_report.txt",
			DataPath:   "coverage_report.json",
			DataFormat: "json",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Input = mergeInputConfig(loaded.Input, defaults.Input)
	result.Report = mergeReportConfig(loaded.Report, defaults.Report)

	return result
}

func mergeInputConfig(loaded, defaults InputConfig) InputConfig {
	result := InputConfig{}

	// CoverageFile: use loaded if non-empty
	if loaded.CoverageFile != "" {
		result.CoverageFile = loaded.CoverageFile
	} else {
		result.CoverageFile = defaults.CoverageFile
	}

	return result
}

func mergeReportConfig(loaded, defaults ReportConfig) ReportConfig {
	result := ReportConfig{}

	// TextPath: use loaded if non-empty
	if loaded.TextPath != "" {
		result.TextPath = loaded.TextPath
	} else {
		result.TextPath = defaults.TextPath
	}

	// DataPath: use loaded if non-empty
	if loaded.DataPath != "" {
		result.DataPath = loaded.DataPath
	} else {
		result.DataPath = defaults.DataPath
	}

	// DataFormat: use loaded if non-empty
	if loaded.DataFormat != "" {
		result.DataFormat = loaded.DataFormat
	} else {
		result.DataFormat = defaults.DataFormat
	}

	return result
}
