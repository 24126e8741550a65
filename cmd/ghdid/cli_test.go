package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/ghdid/internal/domain"
	"github.com/sufield/ghdid/internal/schema"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := RootCmd(VersionInfo{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-01"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "", "resolve", "did:github:jirayuth289", "did:github:octocat")
	require.NoError(t, err)
	assert.Equal(t,
		"https://raw.githubusercontent.com/jirayuth289/ghdid/master/index.jsonld\n"+
			"https://raw.githubusercontent.com/octocat/ghdid/master/index.jsonld\n",
		out)
}

func TestResolveCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "resolve", "github:alice")
	assert.ErrorIs(t, err, domain.ErrInvalidDIDFormat)

	_, err = execute(t, "", "resolve", "did:web:example.com")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMethod)

	_, err = execute(t, "", "resolve", "--strict", "did:github:../etc")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	_, err = execute(t, "", "resolve")
	assert.Error(t, err)
}

func TestResolveCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghdid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolver:\n  branch: main\n"), 0o600))

	out, err := execute(t, "", "resolve", "--config", path, "did:github:alice")
	require.NoError(t, err)
	assert.Equal(t, "https://raw.githubusercontent.com/alice/ghdid/main/index.jsonld\n", out)

	_, err = execute(t, "", "resolve", "--log-level", "loud", "did:github:alice")
	assert.Error(t, err)
}

func TestDIDCmd(t *testing.T) {
	out, err := execute(t, "", "did", "jirayuth289")
	require.NoError(t, err)
	assert.Equal(t, "did:github:jirayuth289\n", out)

	_, err = execute(t, "", "did", "--strict", "not/a/login")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"type": "mnemonic",
		"encoding": "bip39",
		"mnemonic": "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		"tags": [],
		"notes": ""
	}`), 0o600))
	require.NoError(t, os.WriteFile(invalid, []byte(`{"type": "mnemonic"}`), 0o600))

	out, err := execute(t, "", "validate", valid, "--schema", schema.MnemonicWalletKey)
	require.NoError(t, err)
	assert.Contains(t, out, "✓")

	out, err = execute(t, "", "validate", invalid, "--schema", schema.MnemonicWalletKey)
	require.Error(t, err)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "  - /: ")

	out, err = execute(t, `{"type":"did"}`, "validate", "-", "--schema", schema.DIDWalletKey)
	require.Error(t, err)
	assert.Contains(t, out, "is not a valid didWalletKey")

	_, err = execute(t, "", "validate", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, "", "validate", valid, "--schema", "unknown")
	assert.ErrorIs(t, err, schema.ErrUnknownSchema)

	_, err = execute(t, "", "validate")
	assert.Error(t, err)
}

func TestValidateCmd_Fixtures(t *testing.T) {
	out, err := execute(t, "", "validate", "--fixtures")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "✓"))

	out, err = execute(t, "", "validate", "--fixtures", "--schema", schema.MnemonicWalletKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 fixtures failed validation")
	assert.Equal(t, 2, strings.Count(out, "✗"))
}

func TestSchemasCmd(t *testing.T) {
	out, err := execute(t, "", "schemas")
	require.NoError(t, err)
	for name, id := range schema.Builtin {
		assert.Contains(t, out, name)
		assert.Contains(t, out, id)
	}
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "ghdid v1.2.3 (commit: abc123, built: 2026-01-01)\n", out)
}

func TestTableWriter(t *testing.T) {
	t.Parallel()

	table := NewTableWriter([]string{"A", "B"})
	table.AddRow([]string{"long value", "x"})

	var buf bytes.Buffer
	table.Print(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "│ A          │ B │", lines[1])
	assert.Equal(t, "│ long value │ x │", lines[3])
}
