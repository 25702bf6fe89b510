package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the configuration of the rotor command
type Config struct {
	Dump DumpConfig `toml:"dump"`
	Log  LogConfig  `toml:"log"`
}

// DumpConfig controls how tokens, statements and diagnostics are printed
type DumpConfig struct {
	Format       string `toml:"format"`
	ShowNewlines bool   `toml:"show_newlines"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have no usable fallback
func (c *Config) Validate() error {
	switch c.Dump.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid dump format %q, want %q or %q", c.Dump.Format, FormatText, FormatYAML)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Dump.Format == "" {
		c.Dump.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
