package daachorse

import (
	"errors"
	"fmt"
)

// Common automaton errors
var (
	// ErrNonStandardMatchKind is returned by the overlapping-family
	// queries when the automaton was built with a leftmost match kind.
	// The automaton remains usable for Find.
	ErrNonStandardMatchKind = errors.New("match_kind must be STANDARD")

	// ErrInvalidMatchKind indicates an out-of-range MatchKind value was
	// passed to NewWithMatchKind.
	ErrInvalidMatchKind = errors.New("invalid match kind")
)

// ConstructionError wraps any failure to build an automaton: an invalid
// pattern set, an out-of-range match kind, or double-array state overflow.
// No automaton is created when it is returned.
type ConstructionError struct {
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("daachorse: automaton construction failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}
