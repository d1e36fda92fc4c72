package verify

import (
	"strconv"
	"strings"
)

// Decomposition is the sealed result of a capture: the written source
// text, the decomposed expression, and the boolean the expression
// evaluated to at Finish. The value is fixed at construction; printing,
// negating, and querying never re-evaluate.
//
// Decomposition is a small immutable value and may be copied freely.
// Rendering reads the operand values bound at capture, so printing after
// mutating a captured pointer's target reflects the new state.
type Decomposition struct {
	source  string
	expr    Expression
	value   bool
	negated bool
}

// Source returns the verbatim expression text passed to Start.
func (d Decomposition) Source() string {
	return d.source
}

// Expression returns the decomposed expression node.
func (d Decomposition) Expression() Expression {
	return d.expr
}

// Negated reports whether this result is the negation of the captured
// expression.
func (d Decomposition) Negated() bool {
	return d.negated
}

// Bool returns the observed boolean: the evaluated value, complemented
// when the result is negated.
func (d Decomposition) Bool() bool {
	return d.value != d.negated
}

// Not returns the logical complement as a new Decomposition. The
// underlying expression is not re-evaluated; negating twice yields a
// result identical to the original in both observed boolean and
// rendering.
func (d Decomposition) Not() Decomposition {
	d.negated = !d.negated
	return d
}

// String renders the result as
//
//	verify(a < b) => verify(23 < 42) => true
//
// with both verify terms prefixed by "!" and the boolean complemented
// when the result is negated:
//
//	!verify(a < b) => !verify(23 < 42) => false
func (d Decomposition) String() string {
	bang := ""
	if d.negated {
		bang = "!"
	}

	var b strings.Builder
	b.WriteString(bang)
	b.WriteString("verify(")
	b.WriteString(d.source)
	b.WriteString(") => ")
	b.WriteString(bang)
	b.WriteString("verify(")
	if d.expr != nil {
		d.expr.Render(&b)
	}
	b.WriteString(") => ")
	b.WriteString(strconv.FormatBool(d.Bool()))
	return b.String()
}

// Rendered returns only the value-substituted expression text, e.g.
// "23 < 42". Useful for records and labels that carry source and
// rendering separately.
func (d Decomposition) Rendered() string {
	if d.expr == nil {
		return ""
	}
	var b strings.Builder
	d.expr.Render(&b)
	return b.String()
}
