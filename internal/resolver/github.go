package resolver

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sufield/ghdid/internal/assert"
	"github.com/sufield/ghdid/internal/domain"
)

// Defaults for the did:github document location.
const (
	DefaultBaseURL    = "https://raw.githubusercontent.com/"
	DefaultRepository = "ghdid"
	DefaultBranch     = "master"
	DefaultDocument   = "index.jsonld"
)

// Config controls where GitHubResolver points. The zero value uses the defaults.
type Config struct {
	BaseURL    string
	Repository string
	Branch     string
	Document   string

	// Strict rejects identifiers that are not GitHub logins.
	Strict bool
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Repository == "" {
		c.Repository = DefaultRepository
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.Document == "" {
		c.Document = DefaultDocument
	}
	return c
}

// GitHubResolver builds document URLs for the github DID method.
// It holds no mutable state and is safe for concurrent use.
type GitHubResolver struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a GitHubResolver.
type Option func(*GitHubResolver)

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *GitHubResolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewGitHubResolver returns a resolver for cfg.
func NewGitHubResolver(cfg Config, opts ...Option) *GitHubResolver {
	r := &GitHubResolver{
		cfg:    cfg.withDefaults(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Method returns "github".
func (r *GitHubResolver) Method() string {
	return domain.MethodGitHub
}

// DocumentURL parses did and returns the URL of its DID document.
//
// Errors wrap domain.ErrInvalidDIDFormat when the scheme is not "did" and
// domain.ErrUnsupportedMethod when the method is not "github".
func (r *GitHubResolver) DocumentURL(did string) (string, error) {
	d, err := Parse(did)
	if err != nil {
		return "", err
	}
	url, err := r.ResolveURL(d)
	if err != nil {
		return "", withInput(err, did)
	}
	return url, nil
}

// ResolveURL returns the document URL for an already parsed DID.
// The identifier is interpolated verbatim unless Strict is set. Errors name
// the DID in its parsed form; DocumentURL names the raw input instead.
func (r *GitHubResolver) ResolveURL(d *domain.DID) (string, error) {
	if !d.IsGitHub() {
		return "", unsupportedMethod(d.String())
	}
	if r.cfg.Strict && !domain.IsGitHubLogin(d.Identifier()) {
		return "", invalidIdentifier(d.String(), d.Identifier())
	}

	url := r.cfg.BaseURL + d.Identifier() + "/" + r.cfg.Repository + "/" + r.cfg.Branch + "/" + r.cfg.Document

	assert.Invariantf(strings.HasPrefix(url, r.cfg.BaseURL) && strings.HasSuffix(url, "/"+r.cfg.Document),
		"document URL %q lost its base %q or document %q", url, r.cfg.BaseURL, r.cfg.Document)

	r.logger.Debug("resolved DID document URL",
		zap.String("did", d.String()),
		zap.String("url", url))

	return url, nil
}
