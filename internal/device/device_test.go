package device

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "const.product.os.dist.apiversion"

func TestStatic(t *testing.T) {
	dev := Static{Type: "liteWearable", SDKLevel: 3, Params: map[string]string{apiKey: "5"}}

	v, err := dev.Parameter(apiKey)
	require.NoError(t, err)
	assert.Equal(t, "5", v)
	assert.Equal(t, "liteWearable", dev.DeviceType())
	assert.Equal(t, 3, dev.SDKAPILevel())

	_, err = dev.Parameter("missing")
	assert.True(t, errors.Is(err, ErrParameterNotFound))
}

func TestParamFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "flat dotted key", content: apiKey + ": \"5\"\n", want: "5"},
		{name: "nested keys", content: "const:\n  product:\n    os:\n      dist:\n        apiversion: \"6\"\n", want: "6"},
		{name: "numeric value", content: apiKey + ": 7\n", want: "7"},
		{name: "missing key", content: "other: 1\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "device.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			dev, err := LoadParamFile(path, "smartVision", 4)
			require.NoError(t, err)
			assert.Equal(t, "smartVision", dev.DeviceType())
			assert.Equal(t, 4, dev.SDKAPILevel())

			got, err := dev.Parameter(apiKey)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrParameterNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadParamFile_Missing(t *testing.T) {
	_, err := LoadParamFile(filepath.Join(t.TempDir(), "absent.yaml"), "x", 0)
	require.Error(t, err)
}
