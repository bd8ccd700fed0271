package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// config controls irdump's output formatting. It is entirely optional;
// the zero value renders plain, uncolored text.
type config struct {
	Color bool `yaml:"color"`
}

// loadConfig reads a YAML config file at path, or returns the zero
// config when path is empty.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
