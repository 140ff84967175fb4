package sudoku

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete means propagation stalled with unsolved cells left:
	// the naked-subset technique cannot take the grid any further.
	ErrIncomplete = errors.New("propagation cannot make further progress")
	// ErrExhausted means the solver hit its step limit.
	ErrExhausted = errors.New("step limit exceeded")
)

// ConfigError reports an unusable grid configuration.
type ConfigError struct {
	reason string
}

func newConfigError(format string, args ...any) ConfigError {
	return ConfigError{reason: fmt.Sprintf(format, args...)}
}

func (e ConfigError) Error() string {
	return "invalid grid config: " + e.reason
}

// OutOfBoundsError reports an address outside the grid.
type OutOfBoundsError struct {
	Row, Column int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("location (%d, %d) is out of grid bounds", e.Row, e.Column)
}

// InvalidValueError reports an assignment of a symbol that is neither a
// member of the grid alphabet nor None.
type InvalidValueError struct {
	Value Symbol
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("unknown cell value %d", e.Value)
}

// ContradictionError reports a cell whose candidate set became empty while
// the cell was still unsolved. A grid in this state has no solution.
type ContradictionError struct {
	Row, Column int
}

func (e ContradictionError) Error() string {
	return fmt.Sprintf("cell (%d, %d) has no candidates left", e.Row, e.Column)
}

// SolveError is returned by [Solver.Solve] and the generators. Its cause is
// ErrIncomplete, ErrExhausted or a [ContradictionError], reachable through
// [errors.Is] and [errors.As].
type SolveError struct {
	cause error
}

func (e SolveError) Error() string {
	return "solve failed: " + e.cause.Error()
}

func (e SolveError) Unwrap() error {
	return e.cause
}
