package ghdid_test

import (
	"errors"
	"fmt"

	"github.com/sufield/ghdid"
)

func ExampleDocumentURL() {
	url, err := ghdid.DocumentURL("did:github:jirayuth289")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(url)
	// Output: https://raw.githubusercontent.com/jirayuth289/ghdid/master/index.jsonld
}

func ExampleDocumentURL_unsupportedMethod() {
	_, err := ghdid.DocumentURL("did:web:example.com")
	fmt.Println(errors.Is(err, ghdid.ErrUnsupportedMethod))
	// Output: true
}

func ExampleValidator_IsValid() {
	v, err := ghdid.NewValidator()
	if err != nil {
		fmt.Println(err)
		return
	}

	key := map[string]any{
		"type":       "assymetric",
		"encoding":   "base58",
		"publicKey":  "J5QHWFQNREPBnmwCDXZgzy5FjvDGFkLEgWVoEociTfXz",
		"privateKey": "2zFSMA9EHEuEfFNydcMehd8a11PjFwKdTTkHaXKEvoajSAKAMi1zny5Bob4eCgWYUNa7RTkkYydz6CBAS6eqGmLg",
		"tags":       []string{"Ed25519VerificationKey2018"},
		"notes":      "Created with did:key",
	}
	fmt.Println(v.IsValid(key, ghdid.AssymetricWalletKey))
	// Output: true
}
