package config

import "time"

// CurrentVersion is the config file format version this build understands.
const CurrentVersion = 1

// ResolverSection controls where did:github documents are expected to live.
type ResolverSection struct {
	// BaseURL is the raw content host, e.g. "https://raw.githubusercontent.com/".
	BaseURL string `yaml:"base_url"`

	// Repository is the repository holding the DID document in each user's account.
	Repository string `yaml:"repository"`

	Branch   string `yaml:"branch"`
	Document string `yaml:"document"`

	// StrictIdentifiers rejects identifiers that are not GitHub logins instead of
	// interpolating them into the URL verbatim.
	StrictIdentifiers bool `yaml:"strict_identifiers"`
}

// ServerSection contains HTTP API configuration.
type ServerSection struct {
	ListenAddr string `yaml:"listen_addr"`

	// Durations use Go duration format: "5s", "30s", "1m".
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

// LogSection configures the zap logger.
type LogSection struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// FileConfig represents a ghdid configuration file.
//
// The config format is versioned to support future evolution without breaking changes.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Resolver ResolverSection `yaml:"resolver"`
	Server   ServerSection   `yaml:"server"`
	Log      LogSection      `yaml:"log"`
}

// ReadHeaderTimeout returns the parsed server read header timeout.
// Call Validate first; an unparsable value yields the default.
func (c FileConfig) ReadHeaderTimeout() time.Duration {
	return durationOr(c.Server.ReadHeaderTimeout, DefaultReadHeaderTimeout)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c FileConfig) ShutdownTimeout() time.Duration {
	return durationOr(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
