package daachorse

import (
	"unicode/utf8"

	"github.com/coregx/daachorse/doublearray"
)

// Find returns all non-overlapping matches in the haystack under the
// automaton's match kind, in scan order.
//
// Offsets are codepoint indices; Value is the matched pattern's id.
//
// Example (standard kind):
//
//	pma, _ := daachorse.New([]string{"bcd", "ab", "a"})
//	pma.Find("abcd") // [{0 1 2} {1 4 0}]
func (a *Automaton) Find(haystack string) []Match {
	pm := newPositionMap(haystack)

	var matches []Match
	a.findEach(haystack, func(m byteMatch) {
		matches = append(matches, m.translate(pm))
	})
	return matches
}

// FindAsStrings returns the original pattern text for each non-overlapping
// match, in scan order.
//
// Example:
//
//	pma, _ := daachorse.New([]string{"bcd", "ab", "a"})
//	pma.FindAsStrings("abcd") // ["a", "bcd"]
func (a *Automaton) FindAsStrings(haystack string) []string {
	var texts []string
	a.findEach(haystack, func(m byteMatch) {
		texts = append(texts, a.patterns[m.value])
	})
	return texts
}

// findEach runs the iterator selected by the automaton's match kind and
// hands every match, in byte offsets, to yield.
func (a *Automaton) findEach(haystack string, yield func(byteMatch)) {
	switch a.kind {
	case MatchKindStandard:
		it := findIter{machine: a.machine, haystack: haystack}
		for m, ok := it.next(); ok; m, ok = it.next() {
			yield(m)
		}
	default:
		it := leftmostFindIter{machine: a.machine, haystack: haystack, kind: a.kind}
		for m, ok := it.next(); ok; m, ok = it.next() {
			yield(m)
		}
	}
}

// decodeRune decodes the next codepoint of s. valid is false when the
// leading bytes are not well-formed UTF-8: the decoder then yields U+FFFD
// over a single byte, and feeding that rune to the automaton would let it
// match a literal U+FFFD pattern character, which occupies three bytes.
// Iterators treat such bytes as outside the alphabet instead.
func decodeRune(s string) (r rune, size int, valid bool) {
	r, size = utf8.DecodeRuneInString(s)
	return r, size, r != utf8.RuneError || size == utf8.RuneLen(utf8.RuneError)
}

// findIter is the standard non-overlapping iterator.
//
// It scans left to right following failure transitions. Whenever the
// current state reports outputs, the head of the merged chain is the
// longest pattern ending at the position; that match is reported, the
// state resets to the root, and scanning resumes at the match end (which
// is exactly the current position).
type findIter struct {
	machine  *doublearray.Automaton
	haystack string
	pos      int
	state    doublearray.StateID
}

func (it *findIter) next() (byteMatch, bool) {
	for it.pos < len(it.haystack) {
		r, size, valid := decodeRune(it.haystack[it.pos:])
		it.pos += size
		if !valid {
			it.state = doublearray.RootState
			continue
		}
		it.state = it.machine.NextState(it.state, r)

		if out, ok := it.machine.FirstOutput(it.state); ok {
			it.state = doublearray.RootState
			return byteMatch{
				start: it.pos - int(out.ByteLen),
				end:   it.pos,
				value: out.Value,
			}, true
		}
	}
	return byteMatch{}, false
}

// leftmostFindIter implements the leftmost-longest and leftmost-first
// semantics with an anchored scan.
//
// From each unconsumed start position it follows direct trie edges only (no
// failure fallback: a failure transition would change the match's start),
// collecting every pattern terminal on the path. Leftmost-longest keeps the
// deepest terminal; leftmost-first keeps the terminal with the smallest
// pattern id. When the path yields a match, scanning resumes at its end;
// otherwise the start advances one codepoint.
type leftmostFindIter struct {
	machine  *doublearray.Automaton
	haystack string
	kind     MatchKind
	start    int
}

func (it *leftmostFindIter) next() (byteMatch, bool) {
	for it.start < len(it.haystack) {
		state := doublearray.RootState
		pos := it.start
		end := -1
		var value uint32

		for pos < len(it.haystack) {
			r, size, valid := decodeRune(it.haystack[pos:])
			if !valid {
				break
			}
			next, ok := it.machine.Child(state, r)
			if !ok {
				break
			}
			state = next
			pos += size

			out, ok := it.machine.DirectOutput(state)
			if !ok {
				continue
			}
			switch it.kind {
			case MatchKindLeftmostLongest:
				// Deeper terminals overwrite shallower ones.
				end, value = pos, out.Value
			case MatchKindLeftmostFirst:
				if end < 0 || out.Value < value {
					end, value = pos, out.Value
				}
			}
		}

		if end >= 0 {
			m := byteMatch{start: it.start, end: end, value: value}
			it.start = end
			return m, true
		}

		_, size := utf8.DecodeRuneInString(it.haystack[it.start:])
		it.start += size
	}
	return byteMatch{}, false
}
