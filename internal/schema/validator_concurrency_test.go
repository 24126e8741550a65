package schema

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/ghdid/internal/fixtures"
)

func TestValidator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	keys, err := fixtures.WalletKeys()
	require.NoError(t, err)

	const (
		readers = 8
		rounds  = 50
	)

	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			raw := fmt.Sprintf(`{"$id": "https://example.org/schemas/extra-%d.json", "type": "object"}`, i)
			_, err := v.AddSchema([]byte(raw))
			assert.NoError(t, err)
		}
	}()

	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				key := keys[i%len(keys)]
				res, err := v.Validate(key, AssymetricWalletKey)
				if assert.NoError(t, err) {
					assert.True(t, res.Valid)
				}
				assert.True(t, v.IsValid(key, Builtin[AssymetricWalletKey]))
				assert.GreaterOrEqual(t, len(v.Schemas()), len(Builtin))
			}
		}()
	}

	wg.Wait()
	assert.Len(t, v.Schemas(), len(Builtin)+rounds)
}
