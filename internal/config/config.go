// Package config loads the anagram tool configuration from an optional YAML
// file with ANAGRAM_* environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gophersatwork/anagram"
	"gopkg.in/yaml.v3"
)

// ErrMissingSource is returned by Validate when no word list is configured.
var ErrMissingSource = errors.New("source path is required")

// Config is the top-level tool configuration.
type Config struct {
	Source       string        `yaml:"source"`
	Cache        string        `yaml:"cache"`
	ForceRebuild bool          `yaml:"forceRebuild"`
	Logging      LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if path is not empty) and applies
// environment-variable overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to open an index.
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrMissingSource
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Source: "words.txt",
		Cache:  anagram.DefaultCachePath,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads ANAGRAM_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ANAGRAM_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("ANAGRAM_CACHE"); v != "" {
		cfg.Cache = v
	}
	if v := os.Getenv("ANAGRAM_FORCE_REBUILD"); v != "" {
		force, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing ANAGRAM_FORCE_REBUILD: %w", err)
		}
		cfg.ForceRebuild = force
	}
	if v := os.Getenv("ANAGRAM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ANAGRAM_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}
