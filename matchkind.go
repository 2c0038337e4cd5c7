package daachorse

// MatchKind selects the semantics used by Find. It is chosen once at
// construction and cannot change afterwards; iterator selection is a pure
// function of this tag.
//
// The numeric values are part of the public contract (0, 1, 2) and match
// the MATCH_KIND_* constants of other daachorse implementations.
type MatchKind uint8

const (
	// MatchKindStandard reports non-overlapping matches in scan order:
	// at each position, the longest match ending there wins and scanning
	// resumes from its end. Only this kind permits the overlapping-family
	// queries.
	MatchKindStandard MatchKind = iota

	// MatchKindLeftmostLongest reports, among matches starting at the
	// leftmost unconsumed position, the longest one.
	MatchKindLeftmostLongest

	// MatchKindLeftmostFirst reports, among matches starting at the
	// leftmost unconsumed position, the earliest-registered pattern.
	MatchKindLeftmostFirst
)

// String returns the match kind's name.
func (k MatchKind) String() string {
	switch k {
	case MatchKindStandard:
		return "STANDARD"
	case MatchKindLeftmostLongest:
		return "LEFTMOST_LONGEST"
	case MatchKindLeftmostFirst:
		return "LEFTMOST_FIRST"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether k is one of the three defined kinds.
func (k MatchKind) valid() bool {
	return k <= MatchKindLeftmostFirst
}
