// Package fixtures carries static test wallet keys.
//
// The keys are public test material. They are never used to sign or verify
// anything; they exist so schema validation can be exercised against real
// wallet key shapes.
package fixtures

import (
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
)

//go:embed walletkeys.json
var walletKeysJSON []byte

// WalletKeysJSON returns a copy of the raw wallet key fixture document.
func WalletKeysJSON() []byte {
	out := make([]byte, len(walletKeysJSON))
	copy(out, walletKeysJSON)
	return out
}

// WalletKeys returns the test wallet keys. Each call returns fresh values
// that the caller may modify.
func WalletKeys() ([]map[string]any, error) {
	return parseWalletKeys(walletKeysJSON)
}

func parseWalletKeys(data []byte) ([]map[string]any, error) {
	var keys []map[string]any
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, errors.Wrap(err, "failed to parse wallet key fixtures")
	}
	return keys, nil
}
