package anagram

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/afero"
)

// DefaultCachePath is used by Open when no cache path is given.
const DefaultCachePath = ".anagram-cache.json"

// maxLineSize bounds a single line of the word list.
const maxLineSize = 1024 * 1024 // 1MB

// Index groups the words of a word list by anagram key.
// It is backed by a cache file that is reused while the word list is
// unchanged and rebuilt otherwise.
//
// An Index is read-only once Open returns, so Lookup may be called from
// several goroutines. The cache file itself is not locked: two processes
// rebuilding the same cache path at the same time may overwrite each
// other's result.
type Index struct {
	sourcePath   string
	cachePath    string
	fs           afero.Fs
	hashFunc     HashFunc
	forceRebuild bool
	logger       *slog.Logger
	diagnose     func(Diagnostic)

	fingerprint string
	words       map[string][]string
	rebuilt     bool
	persistErr  error
}

// Open builds the index for the word list at sourcePath, reusing the cache
// at cachePath when its stored fingerprint matches the word list.
//
// A missing or corrupt cache is never an error: the index is rebuilt and the
// new cache written. Open fails only if the word list cannot be read, in which
// case the error wraps ErrSourceUnavailable. If the rebuilt cache cannot be
// written, Open still returns a usable index and the failure is available from
// PersistErr.
func Open(sourcePath, cachePath string, options ...Option) (*Index, error) {
	if cachePath == "" {
		cachePath = DefaultCachePath
	}

	idx := &Index{
		sourcePath: sourcePath,
		cachePath:  cachePath,
		fs:         afero.NewOsFs(),
		hashFunc:   defaultHashFunc,
		logger:     slog.New(slog.DiscardHandler),
	}

	// Apply options
	for _, option := range options {
		option(idx)
	}

	log := idx.logger.With("source", sourcePath, "cache", cachePath)

	if sourcePath == "" {
		return nil, fmt.Errorf("%w: empty source path", ErrSourceUnavailable)
	}

	cached, err := loadManifest(idx.fs, cachePath)
	switch {
	case errors.Is(err, errNoManifest):
		log.Debug("no cache file")
		idx.emit(Diagnostic{Kind: CacheMissing, Path: cachePath})
	case err != nil:
		log.Warn("ignoring unusable cache", "error", err)
		idx.emit(Diagnostic{Kind: CacheCorrupt, Path: cachePath, Err: err})
		cached = nil
	}

	current, err := Fingerprint(idx.fs, sourcePath, idx.hashFunc)
	if err != nil {
		return nil, err
	}

	var reason string
	switch {
	case idx.forceRebuild:
		reason = ReasonForced
	case cached == nil:
		reason = ReasonNoCache
	case cached.Fingerprint != current:
		reason = ReasonFingerprintMismatch
	}

	if reason == "" {
		idx.fingerprint = cached.Fingerprint
		idx.words = cached.Index
		log.Debug("reusing cache", "fingerprint", current, "classes", len(idx.words))
		idx.emit(Diagnostic{Kind: CacheReused, Path: cachePath})
		return idx, nil
	}

	if err := idx.rebuild(current, reason, log); err != nil {
		return nil, err
	}
	return idx, nil
}

// rebuild scans the source file into a fresh index and persists it.
func (idx *Index) rebuild(fingerprint, reason string, log *slog.Logger) error {
	words, count, err := scanWords(idx.fs, idx.sourcePath)
	if err != nil {
		return err
	}

	idx.fingerprint = fingerprint
	idx.words = words
	idx.rebuilt = true

	log.Info("rebuilt index", "reason", reason, "fingerprint", fingerprint, "words", count, "classes", len(words))
	idx.emit(Diagnostic{Kind: Rebuilt, Path: idx.cachePath, Reason: reason})

	m := &manifest{Fingerprint: fingerprint, Index: words}
	if err := saveManifest(idx.fs, idx.cachePath, m); err != nil {
		idx.persistErr = &PersistError{Path: idx.cachePath, Err: err}
		log.Warn("failed to persist cache", "error", err)
		idx.emit(Diagnostic{Kind: CachePersistFailure, Path: idx.cachePath, Err: idx.persistErr})
	}

	return nil
}

// scanWords reads the word list line by line. Blank lines are skipped;
// duplicates are kept in the order they appear. Words are stored sanitized
// so a cached index answers exactly like a freshly built one.
func scanWords(fs afero.Fs, path string) (map[string][]string, int, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	words := make(map[string][]string)
	count := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		word := sanitize(scanner.Text())
		if word == "" {
			continue
		}
		key := Normalize(word)
		words[key] = append(words[key], word)
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read %s: %w", ErrSourceUnavailable, path, err)
	}

	return words, count, nil
}

// Lookup returns the words of the source that are anagrams of word, in the
// order they appear in the source, duplicates included. The result is empty,
// never nil, when nothing matches. The returned slice is a copy.
func (idx *Index) Lookup(word string) []string {
	group, ok := idx.words[Normalize(word)]
	if !ok {
		return []string{}
	}
	return slices.Clone(group)
}

// Fingerprint returns the source fingerprint the index was validated against.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// Rebuilt reports whether Open rebuilt the index instead of reusing the cache.
func (idx *Index) Rebuilt() bool {
	return idx.rebuilt
}

// PersistErr returns the error from writing the cache during Open, if any.
// It is a *PersistError when non-nil.
func (idx *Index) PersistErr() error {
	return idx.persistErr
}

// SourcePath returns the path of the word list.
func (idx *Index) SourcePath() string {
	return idx.sourcePath
}

// CachePath returns the path of the cache file.
func (idx *Index) CachePath() string {
	return idx.cachePath
}

func (idx *Index) emit(d Diagnostic) {
	if idx.diagnose != nil {
		idx.diagnose(d)
	}
}
