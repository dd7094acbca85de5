package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
installRoot: /mnt/run
dataRoot: /mnt/data
device:
  type: smartVision
  sdkApiLevel: 7
  apiVersion: "5"
features:
  parseMetadata: false
manifest:
  allowComments: true
log:
  timestamps: false
workers: 2
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/mnt/run", cfg.InstallRoot)
		assert.Equal(t, "/mnt/data", cfg.DataRoot)
		assert.Equal(t, "smartVision", cfg.Device.Type)
		assert.Equal(t, 7, cfg.Device.SDKAPILevel)
		assert.Equal(t, "5", cfg.Device.APIVersion)
		assert.False(t, cfg.MetadataEnabled())
		assert.True(t, cfg.Manifest.AllowComments)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, 2, cfg.Workers)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, DefaultInstallRoot, cfg.InstallRoot)
		assert.Equal(t, DefaultDeviceType, cfg.Device.Type)
		assert.True(t, cfg.MetadataEnabled())
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("BMS_DEVICE_TYPE", "env-device")
		t.Setenv("BMS_INSTALLROOT", "/env/run")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		content := "installRoot: /file/run\ndevice:\n  type: file-device\n"
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-device", cfg.Device.Type)
		assert.Equal(t, "/env/run", cfg.InstallRoot)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("device: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		exists, err := ConfigFileExists(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "config.yaml")

	require.NoError(t, WriteConfig(configFile, DefaultConfig(), false))

	cfg, err := NewLoader().Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultInstallRoot, cfg.InstallRoot)
	assert.Equal(t, DefaultSDKAPILevel, cfg.Device.SDKAPILevel)

	err = WriteConfig(configFile, DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, WriteConfig(configFile, DefaultConfig(), true))
}
