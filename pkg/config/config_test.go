package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	vars := []string{
		"HYPERION_CONFIG_FILE", "HYPERION_HOST", "HYPERION_PORT",
		"HYPERION_LOG_LEVEL", "HYPERION_LOG_JSON", "HYPERION_TEMP_DIR",
		"HYPERION_METRICS_ADDR", "HYPERION_MAX_BACKOFF_SECONDS",
		"HYPERION_DOWNLOAD_TIMEOUT_SECONDS",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 2310, cfg.Port)
	assert.Equal(t, "0.0.0.0:2310", cfg.Addr())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "hyperion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: 127.0.0.1\nport: 9999\n"), 0o644))

	t.Setenv("HYPERION_CONFIG_FILE", path)
	t.Setenv("HYPERION_PORT", "2311")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host, "file value used when env unset")
	assert.Equal(t, 2311, cfg.Port, "env wins over file")
}
