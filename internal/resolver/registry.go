package resolver

import (
	"sort"
	"sync"

	"github.com/sufield/ghdid/internal/assert"
	"github.com/sufield/ghdid/internal/domain"
)

// MethodResolver builds the document URL for DIDs of a single method.
type MethodResolver interface {
	Method() string
	ResolveURL(d *domain.DID) (string, error)
}

// Resolution is the outcome of a successful lookup.
type Resolution struct {
	DID         *domain.DID
	DocumentURL string
}

// Registry routes DIDs to the resolver registered for their method.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]MethodResolver
}

// NewRegistry returns a registry holding the given resolvers.
func NewRegistry(resolvers ...MethodResolver) *Registry {
	reg := &Registry{resolvers: make(map[string]MethodResolver)}
	for _, r := range resolvers {
		reg.Register(r)
	}
	return reg
}

// NewDefaultRegistry returns a registry with only the github method, configured by cfg.
func NewDefaultRegistry(cfg Config, opts ...Option) *Registry {
	return NewRegistry(NewGitHubResolver(cfg, opts...))
}

// Register adds r, replacing any resolver already registered for its method.
func (reg *Registry) Register(r MethodResolver) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.resolvers[r.Method()] = r
}

// Methods returns the registered method names in sorted order.
func (reg *Registry) Methods() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	methods := make([]string, 0, len(reg.resolvers))
	for m := range reg.resolvers {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Resolve parses did and returns its document URL.
func (reg *Registry) Resolve(did string) (*Resolution, error) {
	d, err := Parse(did)
	if err != nil {
		return nil, err
	}

	reg.mu.RLock()
	r, ok := reg.resolvers[d.Method()]
	reg.mu.RUnlock()
	if !ok {
		return nil, unsupportedMethod(did)
	}

	url, err := r.ResolveURL(d)
	if err != nil {
		return nil, withInput(err, did)
	}
	assert.Invariantf(url != "", "resolver for method %q returned an empty URL for %q", d.Method(), did)
	return &Resolution{DID: d, DocumentURL: url}, nil
}

// DocumentURL is Resolve without the parsed DID.
func (reg *Registry) DocumentURL(did string) (string, error) {
	res, err := reg.Resolve(did)
	if err != nil {
		return "", err
	}
	return res.DocumentURL, nil
}
