// Package logging builds the zap loggers used across ghdid.
package logging

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to stderr.
// level is one of debug, info, warn, error; format is "console" or "json".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	var cfg zap.Config
	switch format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, errors.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

var (
	// l is the private global logger (use L() to access)
	l    = zap.NewNop()
	mu   sync.RWMutex
	once sync.Once
)

// L returns the configured global logger. It is a no-op logger until Init runs.
// Always use this function to access the logger instead of storing a reference.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return l
}

// Init installs logger as the global logger. Only the first call has effect.
func Init(logger *zap.Logger) {
	once.Do(func() {
		if logger == nil {
			return
		}
		mu.Lock()
		l = logger
		mu.Unlock()
	})
}
