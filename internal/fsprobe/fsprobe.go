// Package fsprobe answers the two filesystem questions the parser asks.
package fsprobe

import (
	"fmt"

	"github.com/spf13/afero"
)

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(fs afero.Fs, path string) bool {
	fi, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// FileSize returns the size of the regular file at path.
func FileSize(fs afero.Fs, path string) (int64, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	return fi.Size(), nil
}
