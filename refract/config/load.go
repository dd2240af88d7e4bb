package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ApplyDefaults       bool
	ValidateImmediately bool
	ResolvePaths        bool
}

// LoadFromFile loads a Config from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ApplyDefaults {
		config.ApplyDefaults()
	}

	if opts.ResolvePaths {
		baseDir := filepath.Dir(path)
		config.ResolvePaths(NewPathResolver(baseDir))
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a Config to a YAML file
func SaveToFile(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves relative paths in the config against the
// resolver's base directory, so a marker image named next to the config
// file is found regardless of the working directory.
func (c *Config) ResolvePaths(resolver *PathResolver) {
	if c.Animation.Image != "" {
		c.Animation.Image = resolver.ResolvePath(c.Animation.Image)
	}
}
