package hap

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/testutil"
)

func TestExtractProfile(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteHap(t, fs, "/pkg/clock.hap", map[string]string{
		"config.json":        `{"app": {}}`,
		"assets/js/index.js": "export default {}",
		"nested/config.json": "not the manifest",
	})

	data, err := ExtractProfile(fs, "/pkg/clock.hap")
	require.NoError(t, err)
	assert.Equal(t, `{"app": {}}`, string(data))
}

func TestExtractProfile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteHap(t, fs, "/pkg/empty.hap", map[string]string{"assets/x": "y"})
	testutil.WriteHap(t, fs, "/pkg/huge.hap", map[string]string{"config.json": strings.Repeat(" ", maxProfileSize+1)})
	require.NoError(t, afero.WriteFile(fs, "/pkg/plain.hap", []byte("not a zip"), 0o644))
	require.NoError(t, fs.MkdirAll("/pkg/dir.hap", 0o755))

	tests := []struct {
		name string
		path string
		msg  string
	}{
		{"missing file", "/pkg/missing.hap", "not readable"},
		{"directory", "/pkg/dir.hap", "not readable"},
		{"not a zip", "/pkg/plain.hap", "not a zip"},
		{"no manifest", "/pkg/empty.hap", "not found"},
		{"manifest too large", "/pkg/huge.hap", "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractProfile(fs, tt.path)
			require.Error(t, err)
			assert.Equal(t, oerrors.CodeExtractProfile, oerrors.CodeOf(err))
			assert.True(t, errors.Is(err, oerrors.ErrResourceNotFound))
			assert.Contains(t, err.Error(), tt.msg)

			var detail *oerrors.DetailError
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.path, detail.Location)
		})
	}
}
