package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/sufield/ghdid/internal/domain"
)

// FuzzDocumentURL checks the error classification for arbitrary input:
// anything not starting with "did:" is an invalid DID, any other method is
// unsupported, and github DIDs always produce the fixed URL shape.
func FuzzDocumentURL(f *testing.F) {
	seeds := []string{
		"did:github:jirayuth289",
		"did:github:",
		"did:web:example.com",
		"did",
		"",
		"::::",
		"did:github:a:b:c",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	r := NewGitHubResolver(Config{})

	f.Fuzz(func(t *testing.T, did string) {
		url, err := r.DocumentURL(did)

		if !strings.HasPrefix(did, "did:") {
			if !errors.Is(err, domain.ErrInvalidDIDFormat) {
				t.Fatalf("DocumentURL(%q) = %v, want ErrInvalidDIDFormat", did, err)
			}
			return
		}

		parts := strings.Split(did, ":")
		if parts[1] != "github" {
			if !errors.Is(err, domain.ErrUnsupportedMethod) {
				t.Fatalf("DocumentURL(%q) = %v, want ErrUnsupportedMethod", did, err)
			}
			return
		}

		if err != nil {
			t.Fatalf("DocumentURL(%q) unexpected error: %v", did, err)
		}
		identifier := ""
		if len(parts) > 2 {
			identifier = parts[2]
		}
		want := "https://raw.githubusercontent.com/" + identifier + "/ghdid/master/index.jsonld"
		if url != want {
			t.Fatalf("DocumentURL(%q) = %q, want %q", did, url, want)
		}
	})
}
