package compositor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compositor package.
var (
	// ErrEmptyPattern is returned when a pattern contains no components.
	ErrEmptyPattern = errors.New("compositor: empty pattern")

	// ErrMismatchedLabels is returned when the labels across a pattern's
	// components disagree.
	ErrMismatchedLabels = errors.New("compositor: mismatched labels not allowed in patterns")

	// ErrNilOperation is returned when a definition is built without an
	// operation.
	ErrNilOperation = errors.New("compositor: nil operation")
)

// PatternError reports a pattern component that cannot be parsed.
type PatternError struct {
	Pattern   string
	Component string
	Reason    string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compositor: bad component %q in pattern %q: %s", e.Component, e.Pattern, e.Reason)
}
