// Package testutil provides test helpers for building HAP packages and
// extracted bundle trees.
package testutil

import (
	"bytes"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// HapBytes builds a HAP archive holding entries, written in name order.
func HapBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s to archive: %v", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
	return buf.Bytes()
}

// WriteHap writes a HAP archive holding entries to path on fs.
func WriteHap(t *testing.T, fs afero.Fs, path string, entries map[string]string) string {
	t.Helper()
	WriteFile(t, fs, path, string(HapBytes(t, entries)))
	return path
}

// WriteManifestHap writes a HAP whose only entry is config.json.
func WriteManifestHap(t *testing.T, fs afero.Fs, path, manifest string) string {
	t.Helper()
	return WriteHap(t, fs, path, map[string]string{"config.json": manifest})
}

// WriteFile creates a file with the given content on fs, creating parent
// directories as needed.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
