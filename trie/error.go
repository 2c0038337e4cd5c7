package trie

import (
	"errors"
	"fmt"
)

// Common trie construction errors
var (
	// ErrNoPatterns indicates an empty pattern set was given.
	ErrNoPatterns = errors.New("pattern set is empty")

	// ErrEmptyPattern indicates a zero-length pattern, which has no
	// well-defined matching semantics.
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrDuplicatePattern indicates the same pattern was given twice;
	// pattern ids would no longer be unique.
	ErrDuplicatePattern = errors.New("duplicate pattern")
)

// PatternError wraps a construction error with the offending pattern.
type PatternError struct {
	Index   int
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %d (%q): %v", e.Index, e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
