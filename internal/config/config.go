// Package config loads the runtime configuration from an optional YAML
// file layered with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dreyes/roomledger/internal/logging"
)

// DefaultConfigPath is the config location probed when no explicit path is
// given. A missing file at this path is not an error.
const DefaultConfigPath = "roomledger.yaml"

// Environment variable overrides, applied on top of file values.
const (
	EnvDataDir   = "ROOMLEDGER_DATA_DIR"
	EnvLogLevel  = "ROOMLEDGER_LOG_LEVEL"
	EnvLogFormat = "ROOMLEDGER_LOG_FORMAT"
)

// Config represents the complete runtime configuration.
type Config struct {
	// DataDir is the directory holding the three collection files
	// (hotels.json, customers.json, reservations.json).
	DataDir string `yaml:"data_dir"`

	// LogLevel is the minimum logging level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFormat selects console or json log output.
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		DataDir:   "data",
		LogLevel:  "info",
		LogFormat: logging.FormatConsole,
	}
}

// Load builds the effective configuration: defaults first, then the YAML
// file at path (or DefaultConfigPath when path is empty), then environment
// overrides. An explicitly given path must exist and parse; the default
// path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file; defaults plus environment apply.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides config values from ROOMLEDGER_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

// Validate checks that the configuration is usable.
//
// Returns:
//   - error: Validation error describing what is wrong, or nil if valid
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q is invalid: %w", c.LogLevel, err)
	}

	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("log_format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.LogFormat)
	}

	return nil
}

// LoggerConfig returns the logging configuration derived from this config.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	}
}
