package domain

import (
	"errors"
)

// Sentinel errors for DID handling.
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrInvalidDIDFormat indicates the first segment is not the "did" scheme
	ErrInvalidDIDFormat = errors.New("invalid DID")

	// ErrUnsupportedMethod indicates the method segment names a method other than github
	ErrUnsupportedMethod = errors.New("invalid DID, should look like did:github:USERNAME")

	// ErrInvalidIdentifier indicates the method-specific identifier was rejected.
	// Only returned when strict identifier checking is enabled.
	ErrInvalidIdentifier = errors.New("invalid DID identifier")
)
