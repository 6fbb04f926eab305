package anagram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// manifest is the persisted cache record.
// It is valid for reuse only while Fingerprint equals the source's current fingerprint.
type manifest struct {
	Fingerprint string              `json:"fingerprint"` // Hex digest of the source file
	Index       map[string][]string `json:"index"`       // Anagram key -> words in source order
}

// errNoManifest is returned by loadManifest when no cache file exists.
var errNoManifest = errors.New("no cache file")

// loadManifest reads and validates the cache file at path.
// It returns errNoManifest if the file does not exist and an error wrapping
// ErrCacheCorrupt for any other problem.
func loadManifest(fs afero.Fs, path string) (*manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errNoManifest
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrCacheCorrupt, path, err)
	}

	m, err := decodeManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCacheCorrupt, path, err)
	}
	return m, nil
}

// decodeManifest parses a cache document strictly: unknown fields, trailing
// data and missing fields are all rejected.
func decodeManifest(data []byte) (*manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after cache document")
	}

	if m.Fingerprint == "" {
		return nil, errors.New("missing fingerprint")
	}
	if m.Index == nil {
		return nil, errors.New("missing index")
	}
	for key, words := range m.Index {
		if len(words) == 0 {
			return nil, fmt.Errorf("empty word list for key %q", key)
		}
	}

	return &m, nil
}

// saveManifest writes the manifest to path atomically: the document is written
// to a temporary file in the same directory and then renamed over path, so a
// reader sees either the old cache or the new one.
func saveManifest(fs afero.Fs, path string, m *manifest) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	tmp, err := afero.TempFile(fs, dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true

	return nil
}
