// Package config loads litestore settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultConfigFileName = "litestore.yml"

// Config holds the resolved application settings.
type Config struct {
	// DataRoot is the directory database files are resolved under.
	DataRoot string
	// ForeignKeys enables foreign key enforcement.
	ForeignKeys bool
	// BusyTimeoutMs is the lock wait in milliseconds.
	BusyTimeoutMs int
}

// fileConfig is the on-disk YAML shape. Optional keys are pointers so an
// absent key falls back to the default instead of the zero value.
type fileConfig struct {
	DataRoot      string `yaml:"data_root"`
	ForeignKeys   *bool  `yaml:"foreign_keys"`
	BusyTimeoutMs *int   `yaml:"busy_timeout_ms"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		DataRoot:      "./data",
		ForeignKeys:   true,
		BusyTimeoutMs: 5000,
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (Config, error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(configFile, &parsed); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config := Default()
	if parsed.DataRoot != "" {
		config.DataRoot = parsed.DataRoot
	}
	if parsed.ForeignKeys != nil {
		config.ForeignKeys = *parsed.ForeignKeys
	}
	if parsed.BusyTimeoutMs != nil {
		config.BusyTimeoutMs = *parsed.BusyTimeoutMs
	}

	return config, nil
}
