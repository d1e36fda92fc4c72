package verify

import (
	"errors"
	"fmt"
)

// Sentinel errors for the capture pipeline. The typed errors below wrap
// these so callers can match with errors.Is while still reading the
// detail via errors.As.
var (
	// ErrUnsupportedOperator indicates the captured source used a shift
	// or logical operator at the top level of the expression.
	ErrUnsupportedOperator = errors.New("unsupported operator in captured expression")

	// ErrNonComparableOperands indicates the operands do not support the
	// requested comparison.
	ErrNonComparableOperands = errors.New("operands are not comparable")
)

// UnsupportedOperatorError reports a shift or logical operator at the
// capture boundary. Shifts collide with the capture itself and the
// logical operators would need short-circuit evaluation, so the capture
// is rejected before anything is evaluated.
type UnsupportedOperatorError struct {
	Operator string // the offending token: "<<", ">>", "&&" or "||"
	Source   string // the captured source text
}

// Error implements the error interface.
func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q in %q", e.Operator, e.Source)
}

// Unwrap returns ErrUnsupportedOperator for errors.Is matching.
func (e *UnsupportedOperatorError) Unwrap() error {
	return ErrUnsupportedOperator
}

// NonComparableOperandsError reports operands that lack the comparison
// the captured expression asked for.
type NonComparableOperandsError struct {
	Comparator Comparator
	Left       any
	Right      any
}

// Error implements the error interface.
func (e *NonComparableOperandsError) Error() string {
	return fmt.Sprintf("cannot compare %T and %T with %s", e.Left, e.Right, e.Comparator)
}

// Unwrap returns ErrNonComparableOperands for errors.Is matching.
func (e *NonComparableOperandsError) Unwrap() error {
	return ErrNonComparableOperands
}
