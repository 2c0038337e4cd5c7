package daachorse

import "github.com/coregx/daachorse/internal/conv"

// Match is a single pattern occurrence in a haystack.
//
// Start and End are codepoint offsets into the haystack (End exclusive),
// stable regardless of how many bytes each character occupies. Value is the
// matched pattern's id: its zero-based position in the pattern slice the
// automaton was built from.
type Match struct {
	Start int
	End   int
	Value int
}

// byteMatch is a match in raw byte offsets, before position translation.
type byteMatch struct {
	start int
	end   int
	value uint32
}

// translate converts byte offsets to codepoint offsets through the
// haystack's position map.
func (m byteMatch) translate(pm positionMap) Match {
	return Match{
		Start: pm.charIndex(m.start),
		End:   pm.charIndex(m.end),
		Value: conv.Uint32ToInt(m.value),
	}
}
