package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. JEAUDIT_ANALYSIS_MIN_SAMPLE_SIZE.
const EnvPrefix = "JEAUDIT"

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Reports  ReportsConfig  `yaml:"reports" envconfig:"REPORTS"`
}

// LoggingConfig controls structured logging output
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output stdout"`
}

// AnalysisConfig controls the Benford analysis run
type AnalysisConfig struct {
	// MinSampleSize is the minimum number of valid values a column needs
	// before it is analyzed rather than skipped.
	MinSampleSize int `yaml:"min_sample_size" envconfig:"MIN_SAMPLE_SIZE" validate:"min=1"`

	// TopDeviations is how many columns the top-MAD report table lists.
	TopDeviations int `yaml:"top_deviations" envconfig:"TOP_DEVIATIONS" validate:"min=1"`
}

// ReportsConfig controls where artifacts are written
type ReportsConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// Default returns the built-in configuration defaults
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Analysis: AnalysisConfig{
			MinSampleSize: 10,
			TopDeviations: 10,
		},
		Reports: ReportsConfig{
			Dir: "benford_output",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// JEAUDIT_* environment overrides, in that precedence order, then
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
