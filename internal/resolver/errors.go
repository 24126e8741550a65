package resolver

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sufield/ghdid/internal/domain"
)

// ResolutionError records the DID that failed to resolve and why.
// The cause is one of the domain sentinel errors.
type ResolutionError struct {
	DID string
	Err error
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("resolve %q: %v", e.DID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidFormat(did string) error {
	return &ResolutionError{DID: did, Err: domain.ErrInvalidDIDFormat}
}

func unsupportedMethod(did string) error {
	return &ResolutionError{DID: did, Err: domain.ErrUnsupportedMethod}
}

func invalidIdentifier(did, identifier string) error {
	return &ResolutionError{
		DID: did,
		Err: errors.Wrapf(domain.ErrInvalidIdentifier, "%q is not a GitHub login", identifier),
	}
}

// withInput records the caller's original input on a ResolutionError, which
// may carry segments the parsed DID no longer has.
func withInput(err error, did string) error {
	var re *ResolutionError
	if errors.As(err, &re) {
		re.DID = did
	}
	return err
}

// IsInvalidDID reports whether err means the input was not a usable DID
// (bad scheme or rejected identifier).
func IsInvalidDID(err error) bool {
	return errors.Is(err, domain.ErrInvalidDIDFormat) || errors.Is(err, domain.ErrInvalidIdentifier)
}

// IsUnsupportedMethod reports whether err means the DID method has no resolver.
func IsUnsupportedMethod(err error) bool {
	return errors.Is(err, domain.ErrUnsupportedMethod)
}
