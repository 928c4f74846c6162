package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Server.Root)
	assert.Empty(t, cfg.Server.Family)
	assert.False(t, cfg.Verify.Strict)
	assert.Empty(t, cfg.Extract.Dest)
	assert.Zero(t, cfg.Extract.HostBits)
	assert.Empty(t, cfg.Manifest.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "mom-reports", cfg.Storage.Bucket)
	assert.True(t, cfg.Database.Inspect)
	assert.Equal(t, 5, cfg.Database.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_ROOT", "/srv/mom")
	t.Setenv("VERIFY_STRICT", "true")
	t.Setenv("EXTRACT_HOST_BITS", "32")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/mom", cfg.Server.Root)
	assert.True(t, cfg.Verify.Strict)
	assert.Equal(t, 32, cfg.Extract.HostBits)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXTRACT_DEST=/tmp/mom_extracted\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("EXTRACT_DEST") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mom_extracted", cfg.Extract.Dest)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("family", func(t *testing.T) {
		t.Setenv("SERVER_FAMILY", "beos")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "server.family")
	})

	t.Run("host bits", func(t *testing.T) {
		t.Setenv("EXTRACT_HOST_BITS", "16")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "extract.host_bits")
	})
}
