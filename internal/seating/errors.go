package seating

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput matches every *MalformedInputError.
	ErrMalformedInput = errors.New("malformed seat layout")
	// ErrNonConvergence matches every *NonConvergenceError.
	ErrNonConvergence = errors.New("seat layout did not converge")
)

// MalformedInputError reports a layout that cannot be turned into a Grid.
// Line and Column are 1-based; zero means the position is not known.
type MalformedInputError struct {
	Line   int
	Column int
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%v: line %d, column %d: %s", ErrMalformedInput, e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("%v: line %d: %s", ErrMalformedInput, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// NonConvergenceError reports that the iteration budget ran out before a fixed
// point was reached.
type NonConvergenceError struct {
	MaxIterations int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%v within %d iterations", ErrNonConvergence, e.MaxIterations)
}

// Is makes errors.Is(err, ErrNonConvergence) hold.
func (e *NonConvergenceError) Is(target error) bool { return target == ErrNonConvergence }
