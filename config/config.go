// Package config loads and validates sparsecalc settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvsparse/sparse"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvResultsDir = "SPARSECALC_RESULTS_DIR"
	EnvLogLevel   = "SPARSECALC_LOG_LEVEL"
)

// Config holds all sparsecalc configuration.
type Config struct {
	// Directory where operation results are written.
	ResultsDir string `yaml:"results_dir"`

	// Files offered as numbered choices (1..N) by the CLI.
	SampleFiles []string `yaml:"sample_files"`

	// Ingestion policy for matrix files.
	Parse ParseConfig `yaml:"parse"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ParseConfig configures sparse.Parse.
type ParseConfig struct {
	Duplicates     string `yaml:"duplicates"`        // last, first, sum
	SkipOutOfRange bool   `yaml:"skip_out_of_range"` // skip instead of failing
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir: "results",
		SampleFiles: []string{
			"matrix1.txt",
			"matrix2.txt",
			"matrix3.txt",
			"matrix4.txt",
			"matrix5.txt",
			"matrix6.txt",
		},
		Parse: ParseConfig{
			Duplicates:     sparse.DefaultDuplicatePolicy.String(),
			SkipOutOfRange: sparse.DefaultSkipOutOfRange,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config at path on top of DefaultConfig. A missing file is
// not an error: defaults (plus environment overrides) are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvResultsDir); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("config: results_dir must not be empty")
	}
	if _, err := sparse.ParseDuplicatePolicy(c.Parse.Duplicates); err != nil {
		return fmt.Errorf("config: parse.duplicates: %w", err)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}

	return nil
}

// ParseOptions maps the parse section to sparse options.
// Call Validate first; an invalid policy falls back to the default.
func (c *Config) ParseOptions() []sparse.Option {
	policy, err := sparse.ParseDuplicatePolicy(c.Parse.Duplicates)
	if err != nil {
		policy = sparse.DefaultDuplicatePolicy
	}

	return []sparse.Option{
		sparse.WithDuplicatePolicy(policy),
		sparse.WithSkipOutOfRange(c.Parse.SkipOutOfRange),
	}
}

// ZapLevel converts the configured level name. Empty means info.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return zapcore.InfoLevel, err
	}

	return lvl, nil
}
