package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name of the covreport configuration file
const ConfigFileName = "covreport.yaml"

// Config holds all covreport configuration
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Report ReportConfig `yaml:"report"`
}

// InputConfig holds configuration for the coverage document to analyze
type InputConfig struct {
	CoverageFile string `yaml:"coverage_file"`
}

// ReportConfig holds configuration for the generated report files
type ReportConfig struct {
	TextPath   string `yaml:"text_path"`
	DataPath   string `yaml:"data_path"`
	DataFormat string `yaml:"data_format"`
}

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from the given path, falling back to ConfigFileName in
// the working directory when path is empty. A missing config file is not an
// error; defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}
	return LoadFromPath(path)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// ValidDataFormats lists the valid values for the machine-readable format
var ValidDataFormats = []string{"json", "yaml"}

// IsValidDataFormat checks if the given data format value is valid
func IsValidDataFormat(format string) bool {
	for _, valid := range ValidDataFormats {
		if format == valid {
			return true
		}
	}
	return false
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	// Validate data format
	if !IsValidDataFormat(cfg.Report.DataFormat) {
		return fmt.Errorf("%w: data_format must be one of %v, got %q",
			ErrInvalidConfig, ValidDataFormats, cfg.Report.DataFormat)
	}

	// The two report files must not clobber each other
	if cfg.Report.TextPath == cfg.Report.DataPath {
		return fmt.Errorf("%w: text_path and data_path must differ, both are %q",
			ErrInvalidConfig, cfg.Report.TextPath)
	}

	return nil
}
