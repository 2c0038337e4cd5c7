// Package daachorse provides fast multi-pattern string search backed by a
// compact charwise double-array Aho-Corasick automaton.
//
// Given a set of literal patterns, the package builds an automaton that
// scans a haystack once and reports where each pattern occurs, under one of
// three matching semantics:
//   - Standard: non-overlapping matches, longest-ending-here wins
//   - Leftmost-longest: longest match at the leftmost start position
//   - Leftmost-first: earliest-registered match at the leftmost start position
//
// Standard-kind automatons additionally support overlapping queries,
// including a no-suffix variant that suppresses matches inherited through
// failure links.
//
// All reported offsets are codepoint indices, not byte offsets, so results
// are stable for multi-byte UTF-8 input.
//
// Basic usage:
//
//	pma, err := daachorse.New([]string{"bcd", "ab", "a"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range pma.Find("abcd") {
//	    fmt.Println(m.Start, m.End, m.Value) // (0,1,2) then (1,4,0)
//	}
//
// Leftmost semantics:
//
//	pma, _ := daachorse.NewWithMatchKind(
//	    []string{"ab", "a", "abcd"}, daachorse.MatchKindLeftmostLongest)
//	pma.Find("abcd") // [(0,4,2)]
//
// Performance characteristics: transitions are a single arithmetic array
// lookup (double-array encoding), so search is O(haystack) for standard and
// overlapping kinds regardless of pattern count. Construction is
// single-threaded; the built automaton is immutable and safe for unlimited
// concurrent searches.
package daachorse

import (
	"fmt"

	"github.com/coregx/daachorse/doublearray"
	"github.com/coregx/daachorse/trie"
)

// Automaton is a compiled multi-pattern matcher.
//
// An Automaton is immutable after construction and safe to use concurrently
// from multiple goroutines; each search call allocates its own scratch
// state.
//
// The original pattern texts are retained so that the *AsStrings queries
// can recover them by id; the matching core itself only deals in numeric
// pattern ids.
type Automaton struct {
	machine  *doublearray.Automaton
	patterns []string
	kind     MatchKind
}

// New builds an automaton over the given patterns with MatchKindStandard.
//
// Pattern ids are assigned in input order starting at 0 and appear as the
// Value of returned matches. Construction fails with a *ConstructionError
// if the pattern set is empty, contains an empty string, or contains
// duplicates.
//
// Example:
//
//	pma, err := daachorse.New([]string{"bcd", "ab", "a"})
//	if err != nil {
//	    return err
//	}
//	matches := pma.Find("abcd")
func New(patterns []string) (*Automaton, error) {
	return NewWithMatchKind(patterns, MatchKindStandard)
}

// NewWithMatchKind builds an automaton with an explicit match kind.
//
// The kind is fixed for the automaton's lifetime: it selects the iteration
// algorithm used by Find and gates the overlapping-family queries, which
// require MatchKindStandard.
func NewWithMatchKind(patterns []string, kind MatchKind) (*Automaton, error) {
	if !kind.valid() {
		return nil, &ConstructionError{Err: fmt.Errorf("%w: %d", ErrInvalidMatchKind, kind)}
	}

	t, err := trie.Build(patterns)
	if err != nil {
		return nil, &ConstructionError{Err: err}
	}
	machine, err := doublearray.Build(t)
	if err != nil {
		return nil, &ConstructionError{Err: err}
	}

	// Copy so later mutation of the caller's slice cannot desynchronize
	// pattern ids from their text.
	retained := make([]string, len(patterns))
	copy(retained, patterns)

	return &Automaton{
		machine:  machine,
		patterns: retained,
		kind:     kind,
	}, nil
}

// PatternCount returns the number of patterns the automaton was built from.
func (a *Automaton) PatternCount() int {
	return a.machine.PatternCount()
}

// MatchKind returns the match kind the automaton was built with.
func (a *Automaton) MatchKind() MatchKind {
	return a.kind
}

// Pattern returns the original text of the pattern with the given id.
// It panics if id is out of range, mirroring slice indexing.
func (a *Automaton) Pattern(id int) string {
	return a.patterns[id]
}
