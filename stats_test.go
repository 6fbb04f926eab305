package anagram

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestStats(t *testing.T) {
	fs := afero.NewMemMapFs()
	createTestFile(t, fs, sourcePath, []byte("eat\ntea\nate\nlisten\nsilent\ndog\neat\n"))
	idx := openTestIndex(t, fs)

	got := idx.Stats()
	want := Stats{Words: 7, Classes: 3, LargestKey: "aet", LargestSize: 4}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStats_TieUsesSmallestKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	createTestFile(t, fs, sourcePath, []byte("god\ndog\ntea\neat\n"))
	idx := openTestIndex(t, fs)

	if got := idx.Stats().LargestKey; got != "aet" {
		t.Errorf("LargestKey = %q, want %q", got, "aet")
	}
}

func TestClasses(t *testing.T) {
	fs := afero.NewMemMapFs()
	createTestFile(t, fs, sourcePath, []byte("listen\neat\ndog\nsilent\ntea\n"))
	idx := openTestIndex(t, fs)

	testCases := []struct {
		name    string
		minSize int
		want    [][]string
	}{
		{name: "all", minSize: 0, want: [][]string{{"eat", "tea"}, {"dog"}, {"listen", "silent"}}},
		{name: "pairs", minSize: 2, want: [][]string{{"eat", "tea"}, {"listen", "silent"}}},
		{name: "none", minSize: 3, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := idx.Classes(tc.minSize); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Classes(%d) = %v, want %v", tc.minSize, got, tc.want)
			}
		})
	}
}
