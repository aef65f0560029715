package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "dataDir: " + filepath.Join(dir, "data") + "\nstorage:\n  backend: " + backend + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand(&out, &errOut)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandsRoundTrip(t *testing.T) {
	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			cfg := writeTestConfig(t, backend)

			out, _, err := run(t, cfg, "add", "/home/user/docs", "/home/user/pics", "/home/user/docs")
			require.NoError(t, err)
			assert.Equal(t, "added    /home/user/docs\nadded    /home/user/pics\nexists   /home/user/docs\n", out)

			out, _, err = run(t, cfg, "list")
			require.NoError(t, err)
			assert.Equal(t, "/home/user/docs\n/home/user/pics\n", out)

			out, _, err = run(t, cfg, "remove", "/home/user/docs", "/nope")
			require.NoError(t, err)
			assert.Equal(t, "removed  /home/user/docs\nabsent   /nope\n", out)

			out, _, err = run(t, cfg, "list")
			require.NoError(t, err)
			assert.Equal(t, "/home/user/pics\n", out)
		})
	}
}

func TestAddReportsFailures(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	out, _, err := run(t, cfg, "add", " ")
	assert.ErrorIs(t, err, errFailedResults)
	assert.Contains(t, out, "failed")
}

func TestArgsValidation(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	_, _, err := run(t, cfg, "add")
	assert.Error(t, err)

	_, _, err = run(t, cfg, "list", "extra")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	cfg := writeTestConfig(t, "redis")

	_, errOut, err := run(t, cfg, "list")
	assert.Error(t, err)
	assert.Contains(t, errOut, "unknown storage backend")
}
