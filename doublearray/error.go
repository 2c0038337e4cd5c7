package doublearray

import (
	"errors"
	"fmt"
)

// ErrTooManyStates indicates compaction would need a state index beyond
// MaxStateID.
var ErrTooManyStates = errors.New("too many automaton states")

// LimitError wraps ErrTooManyStates with the offending slot index.
type LimitError struct {
	Slot uint64
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("slot %d exceeds max state id %d: %v", e.Slot, MaxStateID, ErrTooManyStates)
}

// Unwrap returns ErrTooManyStates so callers can match with errors.Is.
func (e *LimitError) Unwrap() error {
	return ErrTooManyStates
}
