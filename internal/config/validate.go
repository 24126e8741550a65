package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Validate validates a configuration after defaults were applied.
//
// Ensures:
//   - Version is CurrentVersion
//   - resolver.base_url is an absolute http(s) URL
//   - repository, branch and document are single non-empty path segments
//   - server durations parse and are positive
//   - log level and format are known
func Validate(cfg FileConfig) error {
	if cfg.Version != CurrentVersion {
		return errors.Errorf("unsupported config version %d (want %d)", cfg.Version, CurrentVersion)
	}

	u, err := url.Parse(cfg.Resolver.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid resolver.base_url %q", cfg.Resolver.BaseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("resolver.base_url %q must be an absolute http(s) URL", cfg.Resolver.BaseURL)
	}

	segments := []struct {
		field string
		value string
	}{
		{"resolver.repository", cfg.Resolver.Repository},
		{"resolver.branch", cfg.Resolver.Branch},
		{"resolver.document", cfg.Resolver.Document},
	}
	for _, s := range segments {
		if s.value == "" {
			return errors.Errorf("%s must be set", s.field)
		}
		if strings.ContainsAny(s.value, "/?#") || s.value == "." || s.value == ".." {
			return errors.Errorf("%s %q must be a single path segment", s.field, s.value)
		}
	}

	if cfg.Server.ListenAddr == "" {
		return errors.New("server.listen_addr must be set")
	}
	for field, value := range map[string]string{
		"server.read_header_timeout": cfg.Server.ReadHeaderTimeout,
		"server.shutdown_timeout":    cfg.Server.ShutdownTimeout,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s %q", field, value)
		}
		if d <= 0 {
			return errors.Errorf("%s must be positive, got %s", field, value)
		}
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log.level %q (use debug, info, warn or error)", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("invalid log.format %q (use console or json)", cfg.Log.Format)
	}

	return nil
}
