package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/litebms/bms/internal/errors"
)

const sample = `{
  "app": {
    "bundleName": "com.example.clock",
    "version": {"name": "1.0.0", "code": 12},
    "flag": true,
    "ratio": 1.5,
    "nothing": null
  },
  "module": {
    "deviceType": ["liteWearable", "default"],
    "abilities": []
  }
}`

func decodeSample(t *testing.T) Node {
	t.Helper()
	root, err := Decode([]byte(sample), DecodeOptions{})
	require.NoError(t, err)
	return root
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    DecodeOptions
		wantErr bool
	}{
		{name: "object root", input: `{"app": {}}`},
		{name: "array root", input: `[1, 2]`, wantErr: true},
		{name: "scalar root", input: `"text"`, wantErr: true},
		{name: "malformed", input: `{"app": `, wantErr: true},
		{name: "empty", input: ``, wantErr: true},
		{name: "comments rejected by default", input: "{\n// note\n\"app\": {}\n}", wantErr: true},
		{
			name:  "comments allowed",
			input: "{\n// note\n\"app\": {\"bundleName\": \"com.example.x\",},\n}",
			opts:  DecodeOptions{AllowComments: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, oerrors.CodeParseProfile, oerrors.CodeOf(err))
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNode_DefaultTolerantLookups(t *testing.T) {
	root := decodeSample(t)
	app := root.Tree("app")
	version := app.Tree("version")

	assert.Equal(t, "com.example.clock", app.String("bundleName", ""))
	assert.Equal(t, "fallback", app.String("missing", "fallback"))
	assert.Equal(t, "fallback", app.String("flag", "fallback"), "type mismatch yields default")

	assert.Equal(t, 12, version.Int("code", -1))
	assert.Equal(t, -1, version.Int("name", -1))
	assert.Equal(t, -1, app.Int("ratio", -1), "fractional numbers are not integers")

	assert.True(t, app.Bool("flag", false))
	assert.False(t, app.Bool("bundleName", false))

	assert.False(t, app.Tree("bundleName").Exists(), "scalar is not a sub-tree")
	assert.True(t, root.Tree("module").Tree("deviceType").IsArray())
}

func TestNode_ZeroValue(t *testing.T) {
	var n Node

	assert.False(t, n.Exists())
	assert.False(t, n.Has("x"))
	assert.Equal(t, "d", n.String("x", "d"))
	assert.Equal(t, 7, n.Int("x", 7))
	assert.True(t, n.Bool("x", true))
	assert.Nil(t, n.Elements())
	assert.Zero(t, n.Len())
}

func TestNode_Presence(t *testing.T) {
	app := decodeSample(t).Tree("app")

	tests := []struct {
		key  string
		want Presence
	}{
		{"bundleName", Present},
		{"missing", Absent},
		{"nothing", Absent},
		{"flag", Mismatch},
		{"version", Mismatch},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, got := app.LookupString(tt.key)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}

	_, p := app.LookupBool("flag")
	assert.Equal(t, Present, p)
	_, p = app.LookupInt("ratio")
	assert.Equal(t, Mismatch, p)
	assert.True(t, app.Has("nothing"))
	assert.True(t, app.Child("nothing").IsNull())
}

func TestNode_AsIntNumberForms(t *testing.T) {
	tests := []struct {
		input    string
		want     int
		wantOK   bool
		presence Presence
	}{
		{input: `7`, want: 7, wantOK: true, presence: Present},
		{input: `1.0`, want: 1, wantOK: true, presence: Present},
		{input: `5002.0`, want: 5002, wantOK: true, presence: Present},
		{input: `1e3`, want: 1000, wantOK: true, presence: Present},
		{input: `-2.0`, want: -2, wantOK: true, presence: Present},
		{input: `1.5`, presence: Mismatch},
		{input: `1e300`, presence: Mismatch},
		{input: `"1"`, presence: Mismatch},
		{input: `null`, presence: Absent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := Decode([]byte(`{"n": `+tt.input+`}`), DecodeOptions{})
			require.NoError(t, err)

			got, ok := root.Child("n").AsInt()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}

			_, p := root.LookupInt("n")
			assert.Equal(t, tt.presence, p, "got %s", p)
		})
	}
}

func TestNode_Elements(t *testing.T) {
	module := decodeSample(t).Tree("module")

	types := module.Child("deviceType").Elements()
	require.Len(t, types, 2)
	s, ok := types[1].AsString()
	assert.True(t, ok)
	assert.Equal(t, "default", s)

	assert.True(t, module.Child("abilities").IsArray())
	assert.Zero(t, module.Child("abilities").Len())
}
