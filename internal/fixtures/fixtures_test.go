package fixtures

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletKeys(t *testing.T) {
	t.Parallel()

	keys, err := WalletKeys()
	require.NoError(t, err)
	require.Len(t, keys, 2)

	assert.Equal(t, "application/pgp-keys", keys[0]["encoding"])
	assert.Contains(t, keys[0]["publicKey"], "BEGIN PGP PUBLIC KEY BLOCK")
	assert.Contains(t, keys[0], "revocationCertificate")

	assert.Equal(t, "base58", keys[1]["encoding"])
	assert.Equal(t, "publicKeyBase58", keys[1]["didPublicKeyEncoding"])
	assert.NotContains(t, keys[1], "revocationCertificate")

	for _, k := range keys {
		assert.Equal(t, "assymetric", k["type"])
		assert.NotEmpty(t, k["kid"])
	}
}

func TestWalletKeys_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first, err := WalletKeys()
	require.NoError(t, err)
	first[0]["type"] = "mutated"

	second, err := WalletKeys()
	require.NoError(t, err)
	assert.Equal(t, "assymetric", second[0]["type"])

	raw := WalletKeysJSON()
	raw[0] = 'x'
	assert.Equal(t, byte('['), WalletKeysJSON()[0])
}

func TestParseWalletKeys_Malformed(t *testing.T) {
	t.Parallel()

	keys, err := parseWalletKeys([]byte(`{"not": "a list"}`))
	require.Error(t, err)
	assert.Nil(t, keys)
	assert.Contains(t, err.Error(), "failed to parse wallet key fixtures")

	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(errors.Cause(err), &typeErr))
}
