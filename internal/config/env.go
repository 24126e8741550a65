package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Environment variables that override file values.
const (
	EnvBaseURL    = "GHDID_BASE_URL"
	EnvRepository = "GHDID_REPOSITORY"
	EnvBranch     = "GHDID_BRANCH"
	EnvDocument   = "GHDID_DOCUMENT"
	EnvStrict     = "GHDID_STRICT"
	EnvListenAddr = "GHDID_LISTEN_ADDR"
	EnvLogLevel   = "GHDID_LOG_LEVEL"
	EnvLogFormat  = "GHDID_LOG_FORMAT"
)

// applyEnvOverrides overrides config values with environment variables if set
// Returns error for invalid environment variable values to fail fast
func applyEnvOverrides(cfg *FileConfig, getenv func(string) string) error {
	// Resolver configuration
	if v := getenv(EnvBaseURL); v != "" {
		cfg.Resolver.BaseURL = v
	}
	if v := getenv(EnvRepository); v != "" {
		cfg.Resolver.Repository = v
	}
	if v := getenv(EnvBranch); v != "" {
		cfg.Resolver.Branch = v
	}
	if v := getenv(EnvDocument); v != "" {
		cfg.Resolver.Document = v
	}
	if v := getenv(EnvStrict); v != "" {
		strict, err := parseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s %q", EnvStrict, v)
		}
		cfg.Resolver.StrictIdentifiers = strict
	}

	// Server configuration
	if v := getenv(EnvListenAddr); v != "" {
		cfg.Server.ListenAddr = v
	}

	// Log configuration
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(v))
	}

	return nil
}

// parseBool parses boolean environment variables
// Accepts: "true", "1", "yes", "on" for true; "false", "0", "no", "off" for false
func parseBool(value string) (bool, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, errors.Errorf("invalid boolean value %q", value)
	}
}
