package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxValue caps the numbers the CLI builds. The tree for 20 already
// holds about a million nodes.
const DefaultMaxValue = 20

// Config holds runtime options for the CLI.
type Config struct {
	MaxValue uint32 `yaml:"max_value"` // largest value to build; 0 disables the check
	Verbose  bool   `yaml:"verbose"`   // debug logging
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{MaxValue: DefaultMaxValue}
}

// LoadConfig reads a yaml config from path on top of DefaultConfig.
// An empty path or a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
