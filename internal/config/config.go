// Package config loads optional repolens configuration from a .repolens.yml
// file in the repository root. Everything has a default; the file is never
// required.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the auto-detected configuration file name.
const ConfigFileName = ".repolens.yml"

// Config holds host-side defaults for the CLI.
type Config struct {
	// CommitLimit caps the commit log walk. Defaults to 50.
	CommitLimit int `yaml:"commitLimit"`

	// Output selects the default output format: "text" or "json".
	Output string `yaml:"output"`
}

// Default returns a Config with all default values populated.
func Default() *Config {
	return &Config{
		CommitLimit: 50,
		Output:      "text",
	}
}

// LoadFromFile reads and parses a repolens configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses repolens configuration from raw YAML bytes.
// Unset fields fall back to defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.CommitLimit <= 0 {
		cfg.CommitLimit = Default().CommitLimit
	}
	if cfg.Output == "" {
		cfg.Output = Default().Output
	}
	return cfg, nil
}

// Detect loads .repolens.yml from the given repository root, or returns the
// defaults if the file does not exist.
func Detect(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFileName)
	cfg, err := LoadFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
