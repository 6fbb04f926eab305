package anagram_test

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gophersatwork/anagram"
	"github.com/spf13/afero"
)

func TestWordListScenario(t *testing.T) {
	isDebug := false // Set to true when you want to troubleshoot issues visually.
	memFs := afero.NewMemMapFs()

	source := "dict/words.txt"
	cache := filepath.Join(".anagram", "cache.json")
	words := "plates\npalest\nstaple\npetals\npastel\neat\ntea\nate\n"
	if err := afero.WriteFile(memFs, source, []byte(words), 0o644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	var diags []anagram.Diagnostic
	idx, err := anagram.Open(source, cache,
		anagram.WithFs(memFs),
		anagram.WithDiagnostics(func(d anagram.Diagnostic) { diags = append(diags, d) }),
	)
	if err != nil {
		t.Fatalf("Failed to open index: %v", err)
	}

	if isDebug {
		spew.Dump(diags)
		spew.Dump(idx.Stats())
	}

	// Source order, not alphabetical
	got := idx.Lookup("plates")
	want := []string{"plates", "palest", "staple", "petals", "pastel"}
	if !slices.Equal(got, want) {
		t.Errorf("Lookup(plates) = %v, want %v", got, want)
	}

	// Sorting is a presentation choice left to the caller
	sorted := idx.Lookup("eat")
	slices.Sort(sorted)
	if !slices.Equal(sorted, []string{"ate", "eat", "tea"}) {
		t.Errorf("sorted Lookup(eat) = %v", sorted)
	}

	if got := idx.Lookup("zzz"); len(got) != 0 {
		t.Errorf("Lookup(zzz) = %v, want empty", got)
	}

	// Reopen: reused, same answers
	reopened, err := anagram.Open(source, cache, anagram.WithFs(memFs))
	if err != nil {
		t.Fatalf("Failed to reopen index: %v", err)
	}
	if reopened.Rebuilt() {
		t.Error("reopen rebuilt an unchanged word list")
	}
	if !slices.Equal(reopened.Lookup("plates"), want) {
		t.Errorf("reopened Lookup(plates) = %v, want %v", reopened.Lookup("plates"), want)
	}
}

func ExampleOpen() {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "words.txt", []byte("eat\ntea\nate\neat\n"), 0o644); err != nil {
		log.Fatal(err)
	}

	idx, err := anagram.Open("words.txt", "cache.json", anagram.WithFs(fs))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(idx.Lookup("TEA"))
	fmt.Println(idx.Lookup("zzz"))
	// Output:
	// [eat tea ate eat]
	// []
}

func ExampleNormalize() {
	fmt.Printf("%q\n", anagram.Normalize("  Staple "))
	// Output:
	// "aelpst"
}
