package recipe

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStepOrder reports a step header whose order is not a
	// positive integer.
	ErrMalformedStepOrder = errors.New("malformed step order")
	// ErrMalformedIngredientLine reports an ingredient or replacement line
	// that lacks the "name ; amount, unit" separators.
	ErrMalformedIngredientLine = errors.New("malformed ingredient line")
)

// LineError locates a decoding failure. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
