/*
	Package anagram groups the words of a word list into anagram classes and keeps
the result in a fingerprint-validated cache file.

# Overview

Opening an index fingerprints the word list (xxHash by default) and compares
the digest with the one stored in the cache file. When they match the cached
index is adopted as-is; otherwise the word list is scanned again and the cache
is rewritten.

# Basic Usage

	idx, err := anagram.Open("words.txt", ".anagram-cache.json")
	if err != nil {
	    log.Fatalf("Failed to open index: %v", err)
	}
	if err := idx.PersistErr(); err != nil {
	    log.Printf("Warning: %v", err)
	}

	fmt.Println(idx.Lookup("plates"))
	// [plates palest staple petals pastel]

Results keep the order of the word list, duplicates included. Sorting them is
left to the caller.

# Normalization

A word's key is the word with surrounding whitespace trimmed, lowercased, and
its runes sorted. "Plates", "  plates  " and "PLATES" share a key. Nothing is
validated: the empty string maps to the empty key and simply misses.
Invalid UTF-8 is replaced with U+FFFD, in the word list and in lookups alike,
because the JSON cache file could not store it otherwise.

# Cache File

The cache is one JSON document with two fields:

	{
	  "fingerprint": "5c1d...",
	  "index": {"aelps": ["pales", "lapse"], ...}
	}

It is written to a temporary file next to the destination and renamed into
place, so readers never observe a partial document. Concurrent writers from
different processes are not coordinated.

# Error Handling

  - ErrSourceUnavailable: the word list cannot be read. Open fails.
  - ErrCacheCorrupt: the cache file is unusable. Open rebuilds instead of failing.
  - ErrCachePersist: the new cache could not be written. Open succeeds and
    the error is returned by PersistErr as a *PersistError.

Recovered conditions can be observed with WithDiagnostics or WithLogger:

	idx, err := anagram.Open(src, cache, anagram.WithDiagnostics(func(d anagram.Diagnostic) {
	    fmt.Println(d.Kind, d.Reason, d.Err)
	}))
*/
package anagram
