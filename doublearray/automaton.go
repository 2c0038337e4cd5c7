// Package doublearray compacts a propagated pattern trie into a charwise
// double-array Aho-Corasick automaton.
//
// The transition graph is encoded in two parallel arrays: base and check.
// A transition from state s on codepoint r lands at t = base[s] + code(r)
// and is valid iff check[t] == s, which rejects collisions between rows that
// share array slots. code is a dense mapping from the codepoints appearing
// in the pattern set to small positive integers; codepoints outside the
// pattern alphabet cannot transition anywhere and fall back to the root.
//
// The automaton is immutable once built and safe for unlimited concurrent
// read access. All per-search state lives in the callers.
package doublearray

// StateID is a double-array state identifier. State 0 is the root.
type StateID uint32

const (
	// RootState is the start state. Failed transitions out of the root
	// loop back to it.
	RootState StateID = 0

	// MaxStateID is the largest addressable state index. Construction
	// fails if compaction would need a slot beyond it.
	MaxStateID StateID = 1<<31 - 1

	// vacant marks an unoccupied array slot in check. No valid state id
	// ever equals it, so transitions into vacant slots always fail the
	// check test.
	vacant StateID = ^StateID(0)
)

// Output is one pattern occurrence record attached to a state.
//
// Value is the pattern id; ByteLen the pattern's byte length, from which
// iterators derive the match start. Outputs form chains ordered by
// decreasing length: the head is the pattern ending exactly at the state
// (when the state is a terminal), followed by suffix patterns inherited
// through failure links.
type Output struct {
	Value   uint32
	ByteLen uint32

	// next is a 1-based index into the output slab; 0 ends the chain.
	next uint32
}

// Automaton is the compacted, immutable Aho-Corasick machine.
type Automaton struct {
	base  []uint32
	check []StateID
	fail  []StateID

	// outputPos[s] is a 1-based index of the head of s's merged output
	// chain in outputs; 0 means the state reports nothing.
	outputPos []uint32

	// direct[s] is true when the chain head ends exactly at s rather
	// than being inherited from a failure-chain ancestor.
	direct []bool

	outputs []Output

	// Dense codepoint mapping: ASCII via table, the rest via map.
	// Code 0 means "not in the pattern alphabet".
	asciiCode [128]uint32
	codeMap   map[rune]uint32

	patternCount int
	stateCount   int
}

// code maps a codepoint to its dense transition label, or 0 if the
// codepoint appears in no pattern.
func (a *Automaton) code(r rune) uint32 {
	if uint32(r) < 128 {
		return a.asciiCode[r]
	}
	return a.codeMap[r]
}

// Child returns the direct compacted edge from s on r, without following
// failure links.
func (a *Automaton) Child(s StateID, r rune) (StateID, bool) {
	c := a.code(r)
	if c == 0 {
		return RootState, false
	}
	t := StateID(a.base[s] + c)
	if uint32(t) < uint32(len(a.check)) && a.check[t] == s {
		return t, true
	}
	return RootState, false
}

// NextState returns the state reached from s on r, following failure links
// when no direct edge exists. The result is total: an unmatched codepoint
// at the root stays at the root.
func (a *Automaton) NextState(s StateID, r rune) StateID {
	for {
		if t, ok := a.Child(s, r); ok {
			return t
		}
		if s == RootState {
			return RootState
		}
		s = a.fail[s]
	}
}

// HasOutput reports whether any pattern ends at s, directly or via the
// failure chain.
func (a *Automaton) HasOutput(s StateID) bool {
	return a.outputPos[s] != 0
}

// FirstOutput returns the head of s's merged output chain: the longest
// pattern ending at s's position.
func (a *Automaton) FirstOutput(s StateID) (Output, bool) {
	pos := a.outputPos[s]
	if pos == 0 {
		return Output{}, false
	}
	return a.outputs[pos-1], true
}

// DirectOutput returns the pattern ending exactly at s, excluding patterns
// inherited through failure links.
func (a *Automaton) DirectOutput(s StateID) (Output, bool) {
	if !a.direct[s] {
		return Output{}, false
	}
	return a.outputs[a.outputPos[s]-1], true
}

// AppendOutputs appends s's full merged output chain to dst and returns the
// extended slice. Passing a reused dst[:0] keeps iteration allocation-free.
func (a *Automaton) AppendOutputs(dst []Output, s StateID) []Output {
	for pos := a.outputPos[s]; pos != 0; pos = a.outputs[pos-1].next {
		dst = append(dst, a.outputs[pos-1])
	}
	return dst
}

// PatternCount returns the number of patterns the automaton was built from.
func (a *Automaton) PatternCount() int {
	return a.patternCount
}

// StateCount returns the number of live states (trie nodes) in the
// automaton. The backing arrays may be larger due to compaction padding.
func (a *Automaton) StateCount() int {
	return a.stateCount
}

// ArrayLen returns the length of the base/check arrays, padding included.
func (a *Automaton) ArrayLen() int {
	return len(a.check)
}
