// Package resource resolves label and icon resource ids of an installed
// bundle into concrete strings and paths.
package resource

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrIDNotFound is returned when an index holds no entry for an id.
var ErrIDNotFound = errors.New("resource id not found")

// Index looks up resource values by numeric id.
type Index interface {
	ValueByID(indexPath string, id int) (string, error)
}

// TableIndex reads an index file written as a YAML mapping of id to value:
//
//	16777216: Weather
//	16777217: media/icon.png
type TableIndex struct {
	fs afero.Fs
}

var _ Index = (*TableIndex)(nil)

// NewTableIndex returns a TableIndex reading from fs.
func NewTableIndex(fs afero.Fs) *TableIndex {
	return &TableIndex{fs: fs}
}

// ValueByID implements Index.
func (t *TableIndex) ValueByID(indexPath string, id int) (string, error) {
	data, err := afero.ReadFile(t.fs, indexPath)
	if err != nil {
		return "", fmt.Errorf("reading resource index: %w", err)
	}

	var table map[int]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return "", fmt.Errorf("decoding resource index %s: %w", indexPath, err)
	}

	value, ok := table[id]
	if !ok {
		return "", fmt.Errorf("id %d: %w", id, ErrIDNotFound)
	}
	return value, nil
}
