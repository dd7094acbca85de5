package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDoc struct {
	Name  string `json:"bundleName"`
	Code  int    `json:"versionCode"`
	Extra string `json:"extra,omitempty"`
}

func TestWriteDocument_YAMLUsesJSONTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, sampleDoc{Name: "com.example.clock", Code: 3}, FormatYAML))

	assert.Contains(t, buf.String(), "bundleName: com.example.clock")
	assert.Contains(t, buf.String(), "versionCode: 3")
	assert.NotContains(t, buf.String(), "extra")
}

func TestWriteDocument_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, sampleDoc{Name: "com.example.clock"}, FormatJSON))
	assert.Contains(t, buf.String(), `"bundleName": "com.example.clock"`)
}

func TestWriteDocument_TableUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDocument(&buf, sampleDoc{}, FormatTable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestRenderSummaryTable(t *testing.T) {
	out := RenderSummaryTable([]PackageSummary{
		{Path: "clock.hap", BundleName: "com.example.clock", Version: "1.0.0 (1)", APIWindow: "3-3", Permissions: 2, Status: StatusAccepted},
		{Path: "bad.hap", Status: StatusRejected, Message: "bundle name missing"},
	})

	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "com.example.clock")
	assert.Contains(t, out, "bundle name missing")
}
