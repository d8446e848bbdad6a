// Package config provides the configuration for a vector shell session.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for one shell session.
type Config struct {
	// Prompt is printed before every input line.
	Prompt string `yaml:"prompt"`

	// MaxLine is the longest input line accepted, in bytes. Longer lines are
	// rejected with a re-prompt.
	MaxLine int `yaml:"max_line"`

	// Verbose enables per-command tracing through the logger.
	Verbose bool `yaml:"verbose"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// Default returns a Config with default settings.
func Default() *Config {
	return &Config{
		Prompt:  "> ",
		MaxLine: 80,
	}
}

// Load reads a YAML file and overlays it on the defaults, so a partial file
// only overrides the keys it names.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxLine <= 0 {
		return nil, fmt.Errorf("config %s: max_line must be positive", path)
	}

	return cfg, nil
}
