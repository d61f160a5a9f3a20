// Package config provides configuration loading for the emcraw CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete processing configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Output     OutputConfig     `yaml:"output"`
	Format     FormatConfig     `yaml:"format"`
}

// ExtractionConfig configures the extraction pipeline.
type ExtractionConfig struct {
	// SampleIDPrefix is the literal prefix of valid sample identifiers
	// (default: "CRE2").
	SampleIDPrefix string `yaml:"sample_id_prefix"`
	// Mode is the extraction mode: light, standard, verbose.
	Mode string `yaml:"mode"`
	// Workers bounds parallel configuration processing (0 = unbounded).
	Workers int `yaml:"workers"`
}

// OutputConfig configures where and how results are written.
type OutputConfig struct {
	// Dir is the output directory for generated files.
	Dir string `yaml:"dir"`
	// Formats lists the exports to produce: json, csv, xlsx.
	Formats []string `yaml:"formats"`
}

// FormatConfig configures number formatting and verdict colors.
type FormatConfig struct {
	// FreqDigitsBelow10 is the decimal count for frequencies under
	// 10 MHz; FreqDigitsFrom10 applies from 10 MHz up.
	FreqDigitsBelow10 int `yaml:"freq_digits_below_10mhz"`
	FreqDigitsFrom10  int `yaml:"freq_digits_from_10mhz"`
	// DBDigits is the decimal count for dB values.
	DBDigits int `yaml:"db_digits"`
	// PassColor, FailColor and HeaderColor are RRGGBB hex colors used
	// in spreadsheet output.
	PassColor   string `yaml:"pass_color"`
	FailColor   string `yaml:"fail_color"`
	HeaderColor string `yaml:"header_color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			SampleIDPrefix: "CRE2",
			Mode:           "standard",
			Workers:        0,
		},
		Output: OutputConfig{
			Dir:     "out",
			Formats: []string{"csv", "xlsx"},
		},
		Format: FormatConfig{
			FreqDigitsBelow10: 5,
			FreqDigitsFrom10:  3,
			DBDigits:          2,
			PassColor:         "008000",
			FailColor:         "C80000",
			HeaderColor:       "4472C4",
		},
	}
}

// Load reads a YAML configuration file over the defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
