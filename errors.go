package anagram

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrSourceUnavailable is returned when the word list cannot be opened or read.
	// No index can be produced without it, so Open fails.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrCacheCorrupt marks a persisted cache that could not be parsed or does
	// not match the expected schema. It is never returned from Open; the
	// index is rebuilt instead and the condition is reported as a Diagnostic.
	ErrCacheCorrupt = errors.New("cache corrupt")

	// ErrCachePersist marks a failure to write the rebuilt cache to disk.
	ErrCachePersist = errors.New("cache persist failed")
)

// PersistError records a failed cache write.
// The in-memory index is still valid when this error is reported.
type PersistError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (pe *PersistError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrCachePersist, pe.Path, pe.Err)
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
func (pe *PersistError) Unwrap() []error {
	return []error{ErrCachePersist, pe.Err}
}
