// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReportFormat selects how the conversion summary is printed after the
// status lines.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
)

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`

	// MetricsFile is the path of a Prometheus textfile written after the run.
	// Empty disables metrics output.
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`

	// Report selects text (status lines only) or yaml (status lines plus a
	// YAML summary).
	Report ReportFormat `json:"report" yaml:"report" mapstructure:"report"`

	// Generator is stamped into the container's asset block (default "meshconv").
	Generator string `json:"generator,omitempty" yaml:"generator,omitempty" mapstructure:"generator"`
}
