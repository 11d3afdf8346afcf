// Package config loads the optional runner configuration file. Flags
// always override configured values; the file only moves defaults.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultImplDir is where implementation files are discovered when
// neither flag nor config names a directory. Relative paths resolve
// against the feature file's directory.
const DefaultImplDir = "gherkin-implements"

// Config is the parsed runner configuration.
type Config struct {
	Version        int    `yaml:"version"`
	ImplDir        string `yaml:"impl_dir"`
	Shell          string `yaml:"shell"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	NoColor        bool   `yaml:"no_color"`
}

// Parse decodes a config document strictly: unknown fields and
// multiple YAML documents are errors.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Normalize fills defaulted fields in place.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.ImplDir == "" {
		cfg.ImplDir = DefaultImplDir
	}
}

// Validate rejects values the runner cannot honor.
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("config: unsupported version %d", cfg.Version)
	}
	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("config: timeout_seconds must not be negative")
	}
	return nil
}
