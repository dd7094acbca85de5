package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultInstallRoot, cfg.InstallRoot)
	assert.Equal(t, DefaultDataRoot, cfg.DataRoot)
	assert.Equal(t, DefaultDeviceType, cfg.Device.Type)
	assert.Equal(t, DefaultSDKAPILevel, cfg.Device.SDKAPILevel)
	assert.True(t, cfg.MetadataEnabled())
	assert.Equal(t, DefaultWorkers, cfg.WorkerCount())
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestMetadataEnabled(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name string
		flag *bool
		want bool
	}{
		{"unset defaults to on", nil, true},
		{"explicit on", &on, true},
		{"explicit off", &off, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Features: FeaturesConfig{ParseMetadata: tt.flag}}
			assert.Equal(t, tt.want, cfg.MetadataEnabled())
		})
	}
}

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 1, (&Config{}).WorkerCount())
	assert.Equal(t, 1, (&Config{Workers: -3}).WorkerCount())
	assert.Equal(t, 8, (&Config{Workers: 8}).WorkerCount())
}
