package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a ghdid configuration file, fills in defaults and
// applies GHDID_* environment overrides. The result is validated.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig

	// Clean the path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - Config file path is trusted (from admin/user)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file")
	}

	return finish(cfg)
}

// FromEnv returns the default configuration with environment overrides applied.
// Used when no config file is given.
func FromEnv() (FileConfig, error) {
	return finish(FileConfig{})
}

func finish(cfg FileConfig) (FileConfig, error) {
	applyDefaults(&cfg)
	if err := applyEnvOverrides(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
