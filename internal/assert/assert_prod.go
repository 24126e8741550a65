//go:build !debug

// Package assert provides invariant checks that are compiled in only with the
// "debug" build tag.
package assert

// Invariantf is a no-op without the debug build tag.
func Invariantf(ok bool, format string, args ...any) {}

// Enabled reports whether invariant checks are compiled in.
const Enabled = false
