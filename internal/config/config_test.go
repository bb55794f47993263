package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, ":4002", cfg.Addr)
	assert.Equal(t, "./web", cfg.WasmDir)
	assert.Equal(t, 150*time.Millisecond, cfg.WelcomeDelay)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LANDING_ADDR", ":9000")
	t.Setenv("WELCOME_DELAY", "1s")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, time.Second, cfg.WelcomeDelay)
	assert.False(t, cfg.IsLocal())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WASM_DIR=/srv/wasm\nLANDING_ADDR=:7000\n"), 0o600))
	t.Setenv("LANDING_ADDR", ":8000")
	t.Cleanup(func() { os.Unsetenv("WASM_DIR") })

	cfg, err := Load(zap.NewNop(), filepath.Join(dir, "missing.env"), path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/wasm", cfg.WasmDir)
	assert.Equal(t, ":8000", cfg.Addr, "process environment wins over the file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("WELCOME_DELAY", "soon")
	_, err := Load(zap.NewNop())
	assert.ErrorContains(t, err, "failed to parse config")

	t.Setenv("WELCOME_DELAY", "-1s")
	_, err = Load(zap.NewNop())
	assert.ErrorContains(t, err, "must not be negative")
}
