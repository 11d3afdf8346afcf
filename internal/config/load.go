package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is the config file looked up next to the working
// directory when no --config flag is given.
const DefaultPath = ".featrun.yml"

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but treats a missing default config
// file as an empty configuration.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := Config{}
		Normalize(&cfg)
		return cfg, nil
	}
	return Load(path)
}
