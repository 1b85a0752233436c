// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and the environment.
// - Validation failures wrap ErrInvalidConfig; loader failures wrap ErrLoadConfig.
package config

import (
	"fmt"
	"time"
)

// Config contains process configuration shared by the API server and the
// ingest command.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// StorePath is the catalog file the ingest command writes and the API reads.
	StorePath string `koanf:"store_path"`

	// RawDir holds the manufacturer spec sheets the ingest command scans.
	RawDir string `koanf:"raw_dir"`

	// FailureSampleSize bounds how many row failures a batch summary lists.
	FailureSampleSize int `koanf:"failure_sample_size"`

	// DefaultPageLimit and MaxPageLimit govern GET /shafts?limit.
	DefaultPageLimit int `koanf:"default_page_limit"`
	MaxPageLimit     int `koanf:"max_page_limit"`

	// MaxCompare caps the number of shafts in one comparison.
	MaxCompare int `koanf:"max_compare"`

	// RequestTimeoutMS bounds one HTTP request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":8000",
		StorePath:         "data/processed/shaft_database.json",
		RawDir:            "data/raw",
		FailureSampleSize: 5,
		DefaultPageLimit:  50,
		MaxPageLimit:      500,
		MaxCompare:        10,
		RequestTimeoutMS:  30_000,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.StorePath == "":
		return fmt.Errorf("%w: store_path must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.FailureSampleSize < 0:
		return fmt.Errorf("%w: failure_sample_size must be >= 0", ErrInvalidConfig)
	case c.DefaultPageLimit < 1 || c.MaxPageLimit < c.DefaultPageLimit:
		return fmt.Errorf("%w: need 1 <= default_page_limit <= max_page_limit", ErrInvalidConfig)
	case c.MaxCompare < 1:
		return fmt.Errorf("%w: max_compare must be >= 1", ErrInvalidConfig)
	case c.RequestTimeoutMS < 1:
		return fmt.Errorf("%w: request_timeout_ms must be >= 1", ErrInvalidConfig)
	}
	return nil
}
