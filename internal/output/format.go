package output

import "strings"

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs a summary table.
	FormatTable OutputFormat = "table"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second result is false when the string is not a known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "table":
		return FormatTable, true
	default:
		return FormatYAML, false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"yaml", "json", "table"}
}
