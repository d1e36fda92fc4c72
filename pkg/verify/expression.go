package verify

import (
	"fmt"
	"io"
)

// Expression is the decomposed shape of a captured expression: a single
// truthy operand, or two operands joined by a Comparator.
//
// Expressions are built by the capture pipeline and evaluated exactly
// once by Finish. Render may be called any number of times; it writes the
// value-substituted text from the operands bound at capture and never
// re-evaluates the comparison.
type Expression interface {
	// Render writes the value-substituted form, e.g. "23 < 42" for a
	// binary comparison or "false" for a unary operand.
	Render(w io.Writer)

	// eval runs the comparison or truthiness test. Unexported so only
	// Finish can invoke it; evaluation stays at exactly once.
	eval() (bool, error)
}

// unaryExpression wraps a single operand. Evaluation is its truthiness.
type unaryExpression struct {
	operand any
}

func (e unaryExpression) eval() (bool, error) {
	return Truthy(e.operand), nil
}

func (e unaryExpression) Render(w io.Writer) {
	fmt.Fprintf(w, "%v", e.operand)
}

// binaryExpression wraps two operands and the comparator between them.
// Both operands keep their own types through evaluation and rendering.
type binaryExpression struct {
	operand1 any
	cmp      Comparator
	operand2 any
}

func (e binaryExpression) eval() (bool, error) {
	return e.cmp.Evaluate(e.operand1, e.operand2)
}

func (e binaryExpression) Render(w io.Writer) {
	fmt.Fprintf(w, "%v%s%v", e.operand1, e.cmp.Glyph(), e.operand2)
}
