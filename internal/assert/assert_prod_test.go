//go:build !debug

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariantf_NoOpWithoutDebugTag(t *testing.T) {
	t.Parallel()

	assert.False(t, Enabled)
	assert.NotPanics(t, func() {
		Invariantf(false, "stripped in production builds")
	})
}
