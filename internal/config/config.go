// Package config loads the optional bulkcopy.yaml generator
// configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bulkcopy-generator/internal/analyze"
)

// DefaultFilename is looked up in the working directory when no config
// path is given.
const DefaultFilename = "bulkcopy.yaml"

// Config holds generator settings. Every field is optional; command
// line flags override file values.
type Config struct {
	Version string `yaml:"version"`
	// Packages are the package patterns to scan.
	Packages []string `yaml:"packages"`
	// Suffix overrides the generated filename suffix.
	Suffix string `yaml:"suffix"`
	// Tables overrides destination tables per candidate, keyed by the
	// fully qualified type name or the bare type name.
	Tables map[string]string `yaml:"tables"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:  "1",
		Packages: []string{"./..."},
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}
}

// Apply rewrites candidate table names from the overrides. The fully
// qualified name wins over the bare type name.
func (c *Config) Apply(model *analyze.Model) {
	if len(c.Tables) == 0 {
		return
	}

	for i := range model.Candidates {
		cand := &model.Candidates[i]

		if t, ok := c.Tables[cand.ID.String()]; ok {
			cand.Table = t
			continue
		}

		if t, ok := c.Tables[cand.ID.Name]; ok {
			cand.Table = t
		}
	}
}
