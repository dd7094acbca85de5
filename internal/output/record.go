package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// WriteDocument writes v to w as YAML or JSON. YAML output is driven by the
// value's json tags, so both formats carry the same field names.
func WriteDocument(w io.Writer, v any, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("format %s not supported for document output", format)
	}
}

// MarshalYAML renders v as YAML using its json tags.
func MarshalYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
