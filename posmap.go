package daachorse

// positionMap translates byte offsets into codepoint indices so that match
// boundaries are reported in encoding-independent units.
//
// It is built in one left-to-right pass per search call: every byte offset
// at which a codepoint begins maps to that codepoint's zero-based index,
// and the one-past-the-end offset maps to the total codepoint count.
// Offsets inside a multi-byte sequence are never queried, since match
// boundaries produced by the automaton always fall on codepoint starts.
type positionMap struct {
	toChar []int
}

func newPositionMap(haystack string) positionMap {
	toChar := make([]int, len(haystack)+1)
	n := 0
	for i := range haystack {
		toChar[i] = n
		n++
	}
	toChar[len(haystack)] = n
	return positionMap{toChar: toChar}
}

// charIndex returns the codepoint index for a byte offset at a codepoint
// boundary.
func (p positionMap) charIndex(byteOff int) int {
	return p.toChar[byteOff]
}
