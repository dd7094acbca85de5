// Package hap reads the manifest out of a HAP package archive.
package hap

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/fsprobe"
)

// ProfileName is the manifest entry at the archive root.
const ProfileName = "config.json"

// maxProfileSize bounds the decompressed manifest.
const maxProfileSize = 1 << 20

// ExtractProfile returns the manifest text of the HAP at path.
func ExtractProfile(fs afero.Fs, path string) ([]byte, error) {
	size, err := fsprobe.FileSize(fs, path)
	if err != nil {
		return nil, extractErr(path, "package not readable", err)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, extractErr(path, "opening package", err)
	}
	defer f.Close()

	zr, err := zip.NewReader(f, size)
	if err != nil {
		return nil, extractErr(path, "package is not a zip archive", err)
	}

	for _, entry := range zr.File {
		if entry.Name != ProfileName {
			continue
		}
		if entry.UncompressedSize64 > maxProfileSize {
			return nil, extractErr(path, fmt.Sprintf("%s exceeds %d bytes", ProfileName, maxProfileSize), nil)
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, extractErr(path, "opening "+ProfileName, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxProfileSize+1))
		if err != nil {
			return nil, extractErr(path, "reading "+ProfileName, err)
		}
		if len(data) > maxProfileSize {
			return nil, extractErr(path, fmt.Sprintf("%s exceeds %d bytes", ProfileName, maxProfileSize), nil)
		}
		return data, nil
	}

	return nil, extractErr(path, ProfileName+" not found in package", nil)
}

func extractErr(path, msg string, err error) error {
	return &oerrors.DetailError{
		Code:     oerrors.CodeExtractProfile,
		Message:  msg,
		Location: path,
		Err:      err,
	}
}
