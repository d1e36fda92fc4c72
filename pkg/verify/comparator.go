package verify

import (
	"fmt"
	"strings"
)

// Comparator identifies one of the six supported relational operators.
// It pairs an evaluation rule with a display glyph and carries no state;
// comparison semantics come entirely from the operands (see compare.go).
type Comparator int

// The six supported comparators. Exactly one applies per binary
// decomposition.
const (
	Equal Comparator = iota
	NotEqual
	LessOrEqual
	GreaterOrEqual
	LessThan
	GreaterThan
)

// glyphs keep the spacing used when rendering a decomposed expression.
var glyphs = [...]string{
	Equal:          " == ",
	NotEqual:       " != ",
	LessOrEqual:    " <= ",
	GreaterOrEqual: " >= ",
	LessThan:       " < ",
	GreaterThan:    " > ",
}

// Glyph returns the comparator's display form including the surrounding
// spaces, e.g. " == " or " < ".
func (c Comparator) Glyph() string {
	if c < Equal || c > GreaterThan {
		return " ? "
	}
	return glyphs[c]
}

// String returns the trimmed glyph, e.g. "==" or "<".
func (c Comparator) String() string {
	return strings.TrimSpace(c.Glyph())
}

// Evaluate applies the comparator to the two operands using their native
// comparison semantics. It returns a NonComparableOperandsError when the
// operands do not support the requested comparison. A false comparison is
// a normal result, not an error.
func (c Comparator) Evaluate(op1, op2 any) (bool, error) {
	switch c {
	case Equal:
		return equalOperands(c, op1, op2)
	case NotEqual:
		eq, err := equalOperands(c, op1, op2)
		if err != nil {
			return false, err
		}
		return !eq, nil
	case LessOrEqual, GreaterOrEqual, LessThan, GreaterThan:
		return orderOperands(c, op1, op2)
	default:
		return false, fmt.Errorf("unknown comparator %d", int(c))
	}
}
