package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "data/dataset.json", cfg.DataPath)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout.Duration)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout.Duration)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
env: production
http:
  addr: ":9090"
  read_header_timeout: 2s
data_path: /var/lib/promptatlas/dataset.json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadHeaderTimeout.Duration)
	assert.Equal(t, "/var/lib/promptatlas/dataset.json", cfg.DataPath)
	// Untouched fields keep their defaults.
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout.Duration)
}

func TestLoadMissingFileError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  idle_timeout: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PROMPTATLAS_ADDR", ":7070")
	t.Setenv("PROMPTATLAS_DATA", "/tmp/ds.json")
	t.Setenv("LOG_MODE", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/tmp/ds.json", cfg.DataPath)
	assert.Equal(t, "production", cfg.Env)
}

func TestPortOverridesAddr(t *testing.T) {
	t.Setenv("PROMPTATLAS_ADDR", ":7070")
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}
