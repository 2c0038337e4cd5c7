package daachorse

import (
	"github.com/coregx/daachorse/doublearray"
)

// FindOverlapping returns every match in the haystack, including nested and
// overlapping occurrences, in scan order (by end offset, then by start).
//
// It requires MatchKindStandard; under a leftmost kind it returns
// ErrNonStandardMatchKind and no matches.
//
// Example:
//
//	pma, _ := daachorse.New([]string{"bcd", "ab", "a"})
//	pma.FindOverlapping("abcd") // [{0 1 2} {0 2 1} {1 4 0}]
func (a *Automaton) FindOverlapping(haystack string) ([]Match, error) {
	if a.kind != MatchKindStandard {
		return nil, ErrNonStandardMatchKind
	}
	pm := newPositionMap(haystack)

	var matches []Match
	it := overlappingIter{machine: a.machine, haystack: haystack}
	for m, ok := it.next(); ok; m, ok = it.next() {
		matches = append(matches, m.translate(pm))
	}
	return matches, nil
}

// FindOverlappingAsStrings returns the original pattern text for every
// overlapping match, in scan order. Requires MatchKindStandard.
func (a *Automaton) FindOverlappingAsStrings(haystack string) ([]string, error) {
	if a.kind != MatchKindStandard {
		return nil, ErrNonStandardMatchKind
	}

	var texts []string
	it := overlappingIter{machine: a.machine, haystack: haystack}
	for m, ok := it.next(); ok; m, ok = it.next() {
		texts = append(texts, a.patterns[m.value])
	}
	return texts, nil
}

// FindOverlappingNoSuffix returns overlapping matches with suffix reports
// suppressed: at each position only the pattern ending exactly at the
// current state is reported, not patterns inherited through failure links.
// At most one match is therefore reported per haystack position.
//
// Requires MatchKindStandard.
//
// Example:
//
//	pma, _ := daachorse.New([]string{"bcd", "cd", "abc"})
//	pma.FindOverlappingNoSuffix("abcd") // [{0 3 2} {1 4 0}]
func (a *Automaton) FindOverlappingNoSuffix(haystack string) ([]Match, error) {
	if a.kind != MatchKindStandard {
		return nil, ErrNonStandardMatchKind
	}
	pm := newPositionMap(haystack)

	var matches []Match
	it := overlappingNoSuffixIter{machine: a.machine, haystack: haystack}
	for m, ok := it.next(); ok; m, ok = it.next() {
		matches = append(matches, m.translate(pm))
	}
	return matches, nil
}

// FindOverlappingNoSuffixAsStrings returns the original pattern text for
// every suffix-suppressed overlapping match. Requires MatchKindStandard.
func (a *Automaton) FindOverlappingNoSuffixAsStrings(haystack string) ([]string, error) {
	if a.kind != MatchKindStandard {
		return nil, ErrNonStandardMatchKind
	}

	var texts []string
	it := overlappingNoSuffixIter{machine: a.machine, haystack: haystack}
	for m, ok := it.next(); ok; m, ok = it.next() {
		texts = append(texts, a.patterns[m.value])
	}
	return texts, nil
}

// overlappingIter reports every entry of the merged output chain at every
// position. Matches are never consumed, so occurrences may nest or overlap
// arbitrarily. Within one report position the chain is ordered by
// decreasing pattern length, i.e. increasing start offset.
type overlappingIter struct {
	machine  *doublearray.Automaton
	haystack string
	pos      int
	state    doublearray.StateID

	// pending holds the output chain of the current report position;
	// the slice is reused across positions.
	pending    []doublearray.Output
	pendingIdx int
	reportPos  int
}

func (it *overlappingIter) next() (byteMatch, bool) {
	if it.pendingIdx < len(it.pending) {
		return it.emit(), true
	}

	for it.pos < len(it.haystack) {
		r, size, valid := decodeRune(it.haystack[it.pos:])
		it.pos += size
		if !valid {
			it.state = doublearray.RootState
			continue
		}
		it.state = it.machine.NextState(it.state, r)

		if it.machine.HasOutput(it.state) {
			it.pending = it.machine.AppendOutputs(it.pending[:0], it.state)
			it.pendingIdx = 0
			it.reportPos = it.pos
			return it.emit(), true
		}
	}
	return byteMatch{}, false
}

func (it *overlappingIter) emit() byteMatch {
	out := it.pending[it.pendingIdx]
	it.pendingIdx++
	return byteMatch{
		start: it.reportPos - int(out.ByteLen),
		end:   it.reportPos,
		value: out.Value,
	}
}

// overlappingNoSuffixIter scans like overlappingIter but consults only the
// direct output at each position, so a report yields at most the pattern
// ending exactly there.
type overlappingNoSuffixIter struct {
	machine  *doublearray.Automaton
	haystack string
	pos      int
	state    doublearray.StateID
}

func (it *overlappingNoSuffixIter) next() (byteMatch, bool) {
	for it.pos < len(it.haystack) {
		r, size, valid := decodeRune(it.haystack[it.pos:])
		it.pos += size
		if !valid {
			it.state = doublearray.RootState
			continue
		}
		it.state = it.machine.NextState(it.state, r)

		if out, ok := it.machine.DirectOutput(it.state); ok {
			return byteMatch{
				start: it.pos - int(out.ByteLen),
				end:   it.pos,
				value: out.Value,
			}, true
		}
	}
	return byteMatch{}, false
}
