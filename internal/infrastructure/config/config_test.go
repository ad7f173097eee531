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
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api.frankfurter.app", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 7, cfg.DefaultTrendDays)
	assert.False(t, cfg.DarkMode)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONVERTER_PORT", "9090")
	t.Setenv("CONVERTER_API_TIMEOUT", "3s")
	t.Setenv("CONVERTER_DARK_MODE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.DarkMode)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONVERTER_DEFAULT_TREND_DAYS=30\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CONVERTER_DEFAULT_TREND_DAYS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.DefaultTrendDays)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CONVERTER_DEFAULT_TREND_DAYS", "0")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("CONVERTER_DEFAULT_TREND_DAYS", "7")
	t.Setenv("CONVERTER_PORT", "not-a-port")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
