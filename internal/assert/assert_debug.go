//go:build debug

// Package assert provides invariant checks that are compiled in only with the
// "debug" build tag.
package assert

import "fmt"

// Invariantf panics with a formatted message when ok is false.
// Use it for conditions the code itself guarantees, never for checking input.
//
//	assert.Invariantf(strings.HasPrefix(url, base), "document URL %q lost base %q", url, base)
func Invariantf(ok bool, format string, args ...any) {
	if !ok {
		panic("INVARIANT VIOLATION: " + fmt.Sprintf(format, args...))
	}
}

// Enabled reports whether invariant checks are compiled in.
const Enabled = true
