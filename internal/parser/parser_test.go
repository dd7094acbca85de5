package parser

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litebms/bms/internal/device"
	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/profile"
	"github.com/litebms/bms/internal/resource"
	"github.com/litebms/bms/internal/testutil"
)

const clockManifest = `{
  "app": {
    "bundleName": "com.example.clock",
    "vendor": "example",
    "version": {"name": "1.2.0", "code": 12}
  },
  "module": {
    "deviceType": ["liteWearable"],
    "distro": {"moduleName": "entry", "moduleType": "entry", "delivery": true},
    "abilities": [{
      "label": "$string:app_name",
      "labelId": 1,
      "icon": "$media:icon",
      "iconId": 2,
      "srcPath": "main.js",
      "skills": [{"actions": ["action.system.home"]}]
    }],
    "reqPermissions": [
      {"name": "ohos.permission.VIBRATE", "reason": "alarm", "usedScene": {"when": "always"}}
    ]
  }
}`

func newParser(fs afero.Fs, parseMetadata bool) *Parser {
	dev := device.Static{Type: "liteWearable", SDKLevel: 3}
	return New(fs, dev, resource.NewTableIndex(fs), Options{
		InstallRoot:   "/run",
		DataRoot:      "/data",
		ParseMetadata: parseMetadata,
	})
}

// installTree lays out an extracted bundle with a resource index and icons.
func installTree(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	testutil.WriteFile(t, fs, dir+"/config.json", clockManifest)
	testutil.WriteFile(t, fs, resource.IndexPath(dir, "entry"), "1: Clock\n2: media/icon.png\n")
	for _, name := range []string{resource.IconPNGName, resource.SmallIconPNGName} {
		testutil.WriteFile(t, fs, dir+"/assets/media/"+name, "png")
	}
}

func TestParseHap(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifestHap(t, fs, "/pkg/clock.hap", clockManifest)

	res, err := newParser(fs, true).ParseHap("/pkg/clock.hap")
	require.NoError(t, err)

	rec := res.Record
	assert.Equal(t, "com.example.clock", rec.BundleName)
	assert.Equal(t, "example", rec.Vendor)
	assert.Equal(t, 12, rec.VersionCode)
	assert.Equal(t, "/run/com.example.clock", rec.CodePath)
	assert.Equal(t, "/data/com.example.clock", rec.DataPath)
	assert.Empty(t, rec.Label, "label reference is resolved later")
	assert.Equal(t, "/run/com.example.clock/assets/main.js", rec.Abilities[0].SrcPath)
	assert.Len(t, rec.Abilities[0].Skills, 1)

	assert.Equal(t, profile.ResourceSelector{LabelID: 1, IconID: 2}, res.Selector)
	require.Len(t, res.Permissions, 1)
	assert.Equal(t, profile.GrantAlways, res.Permissions[0].When)
}

func TestParseHap_WithoutMetadata(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifestHap(t, fs, "/pkg/clock.hap", clockManifest)

	res, err := newParser(fs, false).ParseHap("/pkg/clock.hap")
	require.NoError(t, err)
	assert.Nil(t, res.Record.Abilities[0].Skills)
}

func TestParseHap_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		code     oerrors.Code
	}{
		{"not json", `{"app":`, oerrors.CodeParseProfile},
		{"missing module", `{"app": {"bundleName": "com.example.clock"}}`, oerrors.CodeParseProfile},
		{"short bundle name", `{"app": {"bundleName": "com"}, "module": {}}`, oerrors.CodeBundleNameLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.WriteManifestHap(t, fs, "/pkg/bad.hap", tt.manifest)

			_, err := newParser(fs, true).ParseHap("/pkg/bad.hap")
			require.Error(t, err)
			assert.Equal(t, tt.code, oerrors.CodeOf(err))

			var detail *oerrors.DetailError
			require.True(t, errors.As(err, &detail))
			assert.Equal(t, "/pkg/bad.hap", detail.Location)
		})
	}
}

func TestParseHap_MissingPackage(t *testing.T) {
	_, err := newParser(afero.NewMemMapFs(), true).ParseHap("/pkg/none.hap")
	assert.Equal(t, oerrors.CodeExtractProfile, oerrors.CodeOf(err))
}

func TestResolveResources(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifestHap(t, fs, "/pkg/clock.hap", clockManifest)
	p := newParser(fs, true)

	res, err := p.ParseHap("/pkg/clock.hap")
	require.NoError(t, err)

	installTree(t, fs, res.Record.CodePath)
	require.NoError(t, p.ResolveResources(res.Record.CodePath, res))
	assert.Equal(t, "Clock", res.Record.Label)
	assert.Equal(t, "/run/com.example.clock/assets/media/"+resource.IconPNGName, res.Record.BigIconPath)
}

func TestResolveResources_MissingIndex(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifestHap(t, fs, "/pkg/clock.hap", clockManifest)
	p := newParser(fs, true)

	res, err := p.ParseHap("/pkg/clock.hap")
	require.NoError(t, err)

	err = p.ResolveResources("/run/com.example.clock", res)
	assert.Equal(t, oerrors.CodeResourceIndexNotExists, oerrors.CodeOf(err))
	assert.Empty(t, res.Record.Label)
}

func TestParseInstalled(t *testing.T) {
	fs := afero.NewMemMapFs()
	installTree(t, fs, "/opt/apps/clock")

	res, err := newParser(fs, true).ParseInstalled("/opt/apps/clock")
	require.NoError(t, err)
	assert.Equal(t, "/opt/apps/clock", res.Record.CodePath)
	assert.Equal(t, "Clock", res.Record.Label)
	assert.Equal(t, "/opt/apps/clock/assets/media/"+resource.SmallIconPNGName, res.Record.SmallIconPath)
}

func TestParseInstalled_NoManifest(t *testing.T) {
	_, err := newParser(afero.NewMemMapFs(), true).ParseInstalled("/opt/apps/none")
	assert.Equal(t, oerrors.CodeExtractProfile, oerrors.CodeOf(err))
}

func TestReadAttributes(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     Attributes
		code     oerrors.Code
	}{
		{
			name:     "full manifest",
			manifest: clockManifest,
			want:     Attributes{BundleName: "com.example.clock", VersionCode: 12},
		},
		{
			name:     "only attributes",
			manifest: `{"app": {"bundleName": "x", "version": {"code": 3}}}`,
			want:     Attributes{BundleName: "x", VersionCode: 3},
		},
		{
			name:     "missing name",
			manifest: `{"app": {"version": {"code": 3}}}`,
			code:     oerrors.CodeBundleNameMissing,
		},
		{
			name:     "missing code",
			manifest: `{"app": {"bundleName": "x"}}`,
			code:     oerrors.CodeVersionCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.WriteManifestHap(t, fs, "/pkg/a.hap", tt.manifest)

			got, err := newParser(fs, true).ReadAttributes("/pkg/a.hap")
			if tt.code != oerrors.CodeOK {
				assert.Equal(t, tt.code, oerrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	var paths []string
	for i := range 6 {
		path := fmt.Sprintf("/pkg/%d.hap", i)
		if i == 3 {
			testutil.WriteManifestHap(t, fs, path, `{"app": {}}`)
		} else {
			testutil.WriteManifestHap(t, fs, path, clockManifest)
		}
		paths = append(paths, path)
	}

	results := newParser(fs, true).ParseBatch(context.Background(), paths, 3)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		if i == 3 {
			assert.Error(t, r.Err)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, "com.example.clock", r.Result.Record.BundleName)
	}
}

func TestParseBatch_Canceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifestHap(t, fs, "/pkg/a.hap", clockManifest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := newParser(fs, true).ParseBatch(ctx, []string{"/pkg/a.hap", "/pkg/b.hap"}, 0)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
