package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffYAML_NoChanges(t *testing.T) {
	doc := []byte("bundleName: com.example.clock\nversionCode: 1\n")
	diff, err := DiffYAML(doc, doc, false)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiffYAML_BothEmpty(t *testing.T) {
	diff, err := DiffYAML(nil, []byte("  \n"), false)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiffYAML_ReportsChangedField(t *testing.T) {
	from := []byte("bundleName: com.example.clock\nversionCode: 1\n")
	to := []byte("bundleName: com.example.clock\nversionCode: 2\n")

	diff, err := DiffYAML(from, to, false)
	require.NoError(t, err)
	assert.Contains(t, diff, "versionCode")
}

func TestRenderRecordDiff_NoChanges(t *testing.T) {
	out := RenderRecordDiff("a.hap", "b.hap", "", false, GetStyles())
	assert.Contains(t, out, "a.hap")
	assert.Contains(t, out, "b.hap")
	assert.Contains(t, out, "No changes detected.")
}

func TestRenderRecordDiff_Downgrade(t *testing.T) {
	out := RenderRecordDiff("a.hap", "b.hap", "versionCode\n  ± value change\n", true, GetStyles())
	assert.Contains(t, out, "version code decreases")
	assert.Contains(t, out, "Modified:")
	assert.Contains(t, out, "    versionCode")
}
