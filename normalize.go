package anagram

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Normalize returns the anagram key of word: surrounding whitespace trimmed,
// case folded to lower, and the remaining runes sorted ascending.
// Two words are anagrams of each other iff their keys are equal.
// No validation is done; an empty or blank word yields the empty key.
// Invalid UTF-8 is replaced the same way the word list is (see sanitize).
func Normalize(word string) string {
	runes := []rune(strings.ToLower(sanitize(word)))
	slices.Sort(runes)
	return string(runes)
}

// sanitize trims surrounding whitespace and replaces each run of invalid
// UTF-8 bytes with U+FFFD. The cache file is JSON, which cannot carry
// invalid UTF-8, so words are stored in this form to survive a round trip.
func sanitize(word string) string {
	return strings.TrimSpace(strings.ToValidUTF8(word, string(utf8.RuneError)))
}
