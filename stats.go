package anagram

import (
	"slices"
)

// Stats represents index statistics.
type Stats struct {
	Words       int    // Total number of words, duplicates included
	Classes     int    // Number of distinct anagram keys
	LargestKey  string // Key of the largest class (smallest key on ties)
	LargestSize int    // Number of words in the largest class
}

// Stats returns statistics about the index.
func (idx *Index) Stats() Stats {
	stats := Stats{Classes: len(idx.words)}

	for _, key := range idx.sortedKeys() {
		size := len(idx.words[key])
		stats.Words += size
		if size > stats.LargestSize {
			stats.LargestSize = size
			stats.LargestKey = key
		}
	}

	return stats
}

// Classes returns every anagram group with at least minSize words, ordered
// by key. Words within a group keep their source order.
func (idx *Index) Classes(minSize int) [][]string {
	var groups [][]string
	for _, key := range idx.sortedKeys() {
		group := idx.words[key]
		if len(group) < minSize {
			continue
		}
		groups = append(groups, slices.Clone(group))
	}
	return groups
}

// sortedKeys returns the index keys in ascending order for deterministic iteration.
func (idx *Index) sortedKeys() []string {
	keys := make([]string, 0, len(idx.words))
	for k := range idx.words {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
