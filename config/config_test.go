package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml:"), 0o644))
	cfg := Load(dir)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	want := &Config{BackendURL: "http://docs.internal:9000", Theme: "light"}
	require.NoError(t, Save(dir, want))

	got := Load(dir)
	assert.Equal(t, want.BackendURL, got.BackendURL)
	assert.Equal(t, want.Theme, got.Theme)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: light\n"), 0o644))
	cfg := Load(dir)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL, "unset keys keep their defaults")
}
