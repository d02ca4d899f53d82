package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "lambdastream.yaml"

// Config holds all lambdastream configuration.
type Config struct {
	// Student pipeline
	Students StudentsConfig `yaml:"students"`

	// Input records
	Dataset DatasetConfig `yaml:"dataset"`

	// Output rendering
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StudentsConfig configures the student filter.
type StudentsConfig struct {
	Threshold float64 `yaml:"threshold"` // strict lower bound on marks
}

// DatasetConfig points at an optional YAML dataset file.
type DatasetConfig struct {
	Path string `yaml:"path"` // empty: built-in records
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Style string `yaml:"style"` // plain, styled
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Students: StudentsConfig{
			Threshold: 75.0,
		},
		Output: OutputConfig{
			Style: "plain",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults (plus env) if the config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// An unparseable threshold is ignored
	if v := os.Getenv("LAMBDASTREAM_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Students.Threshold = t
		}
	}
	if path := os.Getenv("LAMBDASTREAM_DATASET"); path != "" {
		c.Dataset.Path = path
	}
	if style := os.Getenv("LAMBDASTREAM_STYLE"); style != "" {
		c.Output.Style = style
	}
	if level := os.Getenv("LAMBDASTREAM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidStyles lists the supported output styles.
var ValidStyles = []string{"plain", "styled"}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the supported log encodings.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if math.IsNaN(c.Students.Threshold) || math.IsInf(c.Students.Threshold, 0) {
		return fmt.Errorf("invalid student threshold: %v", c.Students.Threshold)
	}
	if !slices.Contains(ValidStyles, c.Output.Style) {
		return fmt.Errorf("invalid output style: %s (valid: %v)", c.Output.Style, ValidStyles)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}
