package config

import (
	"testing"
)

// FuzzLoad tests the config loading function with random inputs
// to find panics, crashes, or unexpected behavior
func FuzzLoad(f *testing.F) {
	// Seed corpus with valid YAML examples
	f.Add([]byte(`
resolver:
  base_url: https://raw.githubusercontent.com/
  repository: ghdid
server:
  listen_addr: :8080
`))

	f.Add([]byte(`
version: 1
log:
  level: debug
  format: json
`))

	// Fuzz with random YAML-like data
	f.Fuzz(func(t *testing.T, data []byte) {
		tmpfile := t.TempDir() + "/fuzz_config.yaml"
		if err := WriteForTest(tmpfile, data); err != nil {
			t.Skip()
		}

		// Try to load - should never panic
		_, _ = Load(tmpfile)
	})
}

// FuzzValidate tests validation with random field values
func FuzzValidate(f *testing.F) {
	f.Add("https://raw.githubusercontent.com/", "ghdid", "master", "index.jsonld", ":8080", "10s", "info")
	f.Add("", "", "", "", "", "", "")
	f.Add("http://[::1", "..", "a/b", "#", ":0", "-1s", "trace")

	f.Fuzz(func(t *testing.T, baseURL, repo, branch, document, addr, timeout, level string) {
		cfg := FileConfig{
			Version: CurrentVersion,
			Resolver: ResolverSection{
				BaseURL:    baseURL,
				Repository: repo,
				Branch:     branch,
				Document:   document,
			},
			Server: ServerSection{
				ListenAddr:        addr,
				ReadHeaderTimeout: timeout,
				ShutdownTimeout:   timeout,
			},
			Log: LogSection{Level: level, Format: DefaultLogFormat},
		}

		// Should never panic, even with malformed input
		_ = Validate(cfg)
	})
}
