package domain

const (
	// Scheme is the fixed first segment of every DID.
	Scheme = "did"

	// MethodGitHub is the only DID method this module resolves.
	MethodGitHub = "github"

	// Separator delimits DID segments.
	Separator = ":"
)

// DID represents a decentralized identifier of the form did:<method>:<identifier>.
// This is a minimal domain type that holds already-split components.
// Splitting and checking raw strings is done in the resolver adapter.
//
// The identifier is kept verbatim, including an empty identifier.
type DID struct {
	method     string
	identifier string
	uri        string // Cached string representation
}

// NewDIDFromComponents creates a DID from already-checked components.
func NewDIDFromComponents(method, identifier string) *DID {
	return &DID{
		method:     method,
		identifier: identifier,
		uri:        Scheme + Separator + method + Separator + identifier,
	}
}

// String returns the DID in did:<method>:<identifier> form
func (d *DID) String() string {
	return d.uri
}

// Method returns the method segment
func (d *DID) Method() string {
	return d.method
}

// Identifier returns the method-specific identifier
func (d *DID) Identifier() string {
	return d.identifier
}

// Equals checks if two DIDs are equal by comparing their string forms
func (d *DID) Equals(other *DID) bool {
	if other == nil {
		return false
	}
	return d.uri == other.uri
}

// IsGitHub reports whether the DID uses the github method
func (d *DID) IsGitHub() bool {
	return d.method == MethodGitHub
}
