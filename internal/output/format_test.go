package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{OutputFormat("dir"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "table", FormatTable.String())
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"yaml", FormatYAML, true},
		{"YML", FormatYAML, true},
		{"json", FormatJSON, true},
		{"table", FormatTable, true},
		{"dir", FormatYAML, false},
		{"", FormatYAML, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"yaml", "json", "table"}, ValidFormats())
}
