package config

import "time"

// Default configuration values.
const (
	DefaultBaseURL           = "https://raw.githubusercontent.com/"
	DefaultRepository        = "ghdid"
	DefaultBranch            = "master"
	DefaultDocument          = "index.jsonld"
	DefaultListenAddr        = ":8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
)

// Default returns a configuration with every field set to its default.
func Default() FileConfig {
	var cfg FileConfig
	applyDefaults(&cfg)
	return cfg
}

// applyDefaults sets default values for unspecified configuration
func applyDefaults(cfg *FileConfig) {
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}

	// Resolver defaults
	if cfg.Resolver.BaseURL == "" {
		cfg.Resolver.BaseURL = DefaultBaseURL
	}
	if cfg.Resolver.Repository == "" {
		cfg.Resolver.Repository = DefaultRepository
	}
	if cfg.Resolver.Branch == "" {
		cfg.Resolver.Branch = DefaultBranch
	}
	if cfg.Resolver.Document == "" {
		cfg.Resolver.Document = DefaultDocument
	}

	// Server defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = DefaultListenAddr
	}
	if cfg.Server.ReadHeaderTimeout == "" {
		cfg.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout.String()
	}
	if cfg.Server.ShutdownTimeout == "" {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout.String()
	}

	// Log defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
