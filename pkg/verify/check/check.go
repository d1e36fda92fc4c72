// Package check reports captured verifications to a testing.TB.
//
// Check reports an already finished decomposition. That starts a fluent
// assertion that captures, evaluates, and reports in one chain:
//
//	check.That(t, "got == want", got).Equal(want)
//	check.That(t, "queue.Len() < cap", queue.Len()).LessThan(cap)
//	check.That(t, "resp.Ok", resp.Ok).Truthy()
//
// Failure messages carry the decomposed expression and a short call
// site label. Equal and NotEqual fall back to a deep comparison with a
// diff when the operands are not natively comparable, so slices, maps,
// and structs of any shape can still be asserted on.
package check

import (
	"errors"
	"testing"

	"github.com/randalmurphal/verify/pkg/verify"
)

// Check reports a finished decomposition to t.
// Returns true when the check passed. A capture or comparison error
// fails the test with the error instead of a decomposition.
//
//	d, err := verify.Start("a < b", a).LessThan(b).Finish()
//	check.Check(t, d, err)
func Check(t testing.TB, d verify.Decomposition, err error) bool {
	t.Helper()
	return report(t, d, err, 3)
}

// report writes the failure for a finished check.
// skip is the callSite frame count to the user's call.
func report(t testing.TB, d verify.Decomposition, err error, skip int) bool {
	t.Helper()
	if err != nil {
		t.Errorf("check failed at %s: %v", callSite(skip), err)
		return false
	}
	if !d.Bool() {
		t.Errorf("check failed at %s: %s", callSite(skip), d.String())
		return false
	}
	return true
}

// Assertion is a fluent single-use assertion started by That.
type Assertion struct {
	t      testing.TB
	source string
	left   any
	first  *verify.FirstOperand
}

// That captures the left operand of an assertion.
// The chain completes with a comparator method or Truthy.
func That(t testing.TB, source string, operand any) *Assertion {
	return &Assertion{
		t:      t,
		source: source,
		left:   operand,
		first:  verify.Start(source, operand),
	}
}

// Truthy evaluates the captured operand on its own.
func (a *Assertion) Truthy() bool {
	a.t.Helper()
	d, err := a.first.Finish()
	return report(a.t, d, err, 3)
}

// Equal asserts the operands are equal.
// Falls back to a deep comparison when they are not natively comparable.
func (a *Assertion) Equal(right any) bool {
	a.t.Helper()
	d, err := a.first.Equal(right).Finish()
	if errors.Is(err, verify.ErrNonComparableOperands) {
		if eq, diff, ok := diffValues(a.left, right); ok {
			if eq {
				return true
			}
			a.t.Errorf("check failed at %s: %s mismatch (-left +right):\n%s",
				callSite(2), a.source, diff)
			return false
		}
	}
	return report(a.t, d, err, 3)
}

// NotEqual asserts the operands are not equal.
// Falls back to a deep comparison when they are not natively comparable.
func (a *Assertion) NotEqual(right any) bool {
	a.t.Helper()
	d, err := a.first.NotEqual(right).Finish()
	if errors.Is(err, verify.ErrNonComparableOperands) {
		if eq, _, ok := diffValues(a.left, right); ok {
			if !eq {
				return true
			}
			a.t.Errorf("check failed at %s: %s: values are deep-equal",
				callSite(2), a.source)
			return false
		}
	}
	return report(a.t, d, err, 3)
}

// LessOrEqual asserts left <= right.
func (a *Assertion) LessOrEqual(right any) bool {
	a.t.Helper()
	d, err := a.first.LessOrEqual(right).Finish()
	return report(a.t, d, err, 3)
}

// GreaterOrEqual asserts left >= right.
func (a *Assertion) GreaterOrEqual(right any) bool {
	a.t.Helper()
	d, err := a.first.GreaterOrEqual(right).Finish()
	return report(a.t, d, err, 3)
}

// LessThan asserts left < right.
func (a *Assertion) LessThan(right any) bool {
	a.t.Helper()
	d, err := a.first.LessThan(right).Finish()
	return report(a.t, d, err, 3)
}

// GreaterThan asserts left > right.
func (a *Assertion) GreaterThan(right any) bool {
	a.t.Helper()
	d, err := a.first.GreaterThan(right).Finish()
	return report(a.t, d, err, 3)
}
