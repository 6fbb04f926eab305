package anagram

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Option defines a function that configures an Index.
type Option func(*Index)

// WithFs sets a custom filesystem for the index.
// Both the source file and the cache file are accessed through it.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	idx, err := anagram.Open("words.txt", ".anagram-cache.json", anagram.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(idx *Index) {
		idx.fs = fs
	}
}

// WithHashFunc sets a custom hash function for fingerprinting the source.
// The default is xxHash64.
//
// Note: Changing the hash function invalidates existing caches.
func WithHashFunc(hashFunc HashFunc) Option {
	return func(idx *Index) {
		idx.hashFunc = hashFunc
	}
}

// WithForceRebuild skips the fingerprint comparison and always rebuilds.
func WithForceRebuild(force bool) Option {
	return func(idx *Index) {
		idx.forceRebuild = force
	}
}

// WithLogger sets the structured logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) {
		if logger != nil {
			idx.logger = logger
		}
	}
}

// WithDiagnostics registers a callback that receives every cache decision
// made while opening the index, including conditions that are recovered
// silently such as a corrupt cache file.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(idx *Index) {
		idx.diagnose = fn
	}
}
