package resolver

import (
	"strings"

	"github.com/sufield/ghdid/internal/domain"
)

// Parse splits a DID string on ':' into scheme, method and identifier.
//
// The scheme must be exactly "did" and be followed by a separator, otherwise
// ErrInvalidDIDFormat is returned. The method is not checked here. A missing
// identifier segment is treated as empty and segments after the third are ignored,
// so "did:github:a:b" parses with identifier "a".
func Parse(did string) (*domain.DID, error) {
	parts := strings.Split(did, domain.Separator)
	if parts[0] != domain.Scheme || len(parts) < 2 {
		return nil, invalidFormat(did)
	}

	var identifier string
	if len(parts) > 2 {
		identifier = parts[2]
	}

	return domain.NewDIDFromComponents(parts[1], identifier), nil
}
