// Package ghdid resolves did:github identifiers and validates DID wallet keys.
//
// A did:github DID names a GitHub account; its DID document is expected at a
// fixed location in that account's "ghdid" repository:
//
//	url, err := ghdid.DocumentURL("did:github:jirayuth289")
//	// https://raw.githubusercontent.com/jirayuth289/ghdid/master/index.jsonld
//
// The document is never fetched. Errors match ErrInvalidDIDFormat or
// ErrUnsupportedMethod with errors.Is.
//
// Wallet keys are checked against the built-in JSON schemas:
//
//	v, err := ghdid.NewValidator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok := v.IsValid(key, ghdid.AssymetricWalletKey)
//
// The same operations are served over HTTP by Start and Run:
//
//	shutdown, err := ghdid.Start("ghdid.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown()
package ghdid

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sufield/ghdid/internal/config"
	"github.com/sufield/ghdid/internal/domain"
	"github.com/sufield/ghdid/internal/httpapi"
	"github.com/sufield/ghdid/internal/logging"
	"github.com/sufield/ghdid/internal/resolver"
	"github.com/sufield/ghdid/internal/schema"
)

// Errors returned by DocumentURL.
var (
	ErrInvalidDIDFormat  = domain.ErrInvalidDIDFormat
	ErrUnsupportedMethod = domain.ErrUnsupportedMethod
	ErrInvalidIdentifier = domain.ErrInvalidIdentifier
)

// Short names of the built-in wallet key schemas.
const (
	AssymetricWalletKey = schema.AssymetricWalletKey
	MnemonicWalletKey   = schema.MnemonicWalletKey
	DIDWalletKey        = schema.DIDWalletKey
)

// Validator checks instances against registered JSON schemas.
type Validator = schema.Validator

// ValidationResult is the outcome of Validator.Validate.
type ValidationResult = schema.Result

var defaultRegistry = resolver.NewDefaultRegistry(resolver.Config{})

// DocumentURL returns the URL of the DID document for a did:github DID,
// using the default raw.githubusercontent.com location.
func DocumentURL(did string) (string, error) {
	return defaultRegistry.DocumentURL(did)
}

// NewValidator returns a Validator with the built-in wallet key schemas registered.
func NewValidator() (*Validator, error) {
	return schema.NewValidator()
}

// NewHandler builds the HTTP API for cfg.
func NewHandler(cfg config.FileConfig, logger *zap.Logger) (http.Handler, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build schema validator")
	}
	registry := resolver.NewDefaultRegistry(ResolverConfig(cfg), resolver.WithLogger(logger))
	return httpapi.NewHandler(registry, validator, logger), nil
}

// ResolverConfig maps the resolver section of a config file to resolver settings.
func ResolverConfig(cfg config.FileConfig) resolver.Config {
	return resolver.Config{
		BaseURL:    cfg.Resolver.BaseURL,
		Repository: cfg.Resolver.Repository,
		Branch:     cfg.Resolver.Branch,
		Document:   cfg.Resolver.Document,
		Strict:     cfg.Resolver.StrictIdentifiers,
	}
}

// LoadConfig loads configPath, or the defaults plus GHDID_* overrides when
// configPath is empty.
func LoadConfig(configPath string) (config.FileConfig, error) {
	if configPath == "" {
		return config.FromEnv()
	}
	return config.Load(configPath)
}

// Start serves the HTTP API configured by configPath in the background.
//
// Returns:
//   - shutdown: function to gracefully stop the server (safe to call more than once)
//   - error: if config loading or binding the listener fails
func Start(configPath string) (shutdown func() error, err error) {
	cfg, logger, handler, err := prepare(configPath)
	if err != nil {
		return nil, err
	}
	_, shutdown, err = httpapi.Start(cfg, handler, logger)
	if err != nil {
		return nil, err
	}
	return func() error {
		err := shutdown()
		_ = logger.Sync()
		return err
	}, nil
}

// Run serves the HTTP API and blocks until ctx is done or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, configPath string) error {
	cfg, logger, handler, err := prepare(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	return httpapi.Run(ctx, cfg, handler, logger)
}

func prepare(configPath string) (config.FileConfig, *zap.Logger, http.Handler, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return cfg, nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return cfg, nil, nil, err
	}
	logging.Init(logger)

	handler, err := NewHandler(cfg, logger)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, logger, handler, nil
}
