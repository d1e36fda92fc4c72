package verify

// Start begins a decomposition capture. source is the verbatim written
// expression; operand is the value of the whole expression, or of its
// left-hand side when one of the comparator methods is applied next.
//
// Start never evaluates a comparison. Unsupported operators at the top
// level of source (<<, >>, && and ||) poison the capture; the error
// surfaces from Finish before anything is evaluated.
func Start(source string, operand any) *FirstOperand {
	return &FirstOperand{
		source:  source,
		operand: operand,
		err:     scanBoundary(source),
	}
}

// FirstOperand holds the source text and left operand of a capture in
// progress. Apply exactly one of the six comparator methods to capture a
// binary comparison, or call Finish directly for a unary decomposition.
//
// FirstOperand is transient: use it within the statement that created it.
type FirstOperand struct {
	source  string
	operand any
	err     error
}

// compare binds the comparator and right operand, carrying any capture
// error forward.
func (f *FirstOperand) compare(c Comparator, operand any) *SecondOperand {
	return &SecondOperand{
		source:   f.source,
		operand1: f.operand,
		cmp:      c,
		operand2: operand,
		err:      f.err,
	}
}

// Equal captures an == comparison with the given right operand.
func (f *FirstOperand) Equal(operand any) *SecondOperand {
	return f.compare(Equal, operand)
}

// NotEqual captures a != comparison with the given right operand.
func (f *FirstOperand) NotEqual(operand any) *SecondOperand {
	return f.compare(NotEqual, operand)
}

// LessOrEqual captures a <= comparison with the given right operand.
func (f *FirstOperand) LessOrEqual(operand any) *SecondOperand {
	return f.compare(LessOrEqual, operand)
}

// GreaterOrEqual captures a >= comparison with the given right operand.
func (f *FirstOperand) GreaterOrEqual(operand any) *SecondOperand {
	return f.compare(GreaterOrEqual, operand)
}

// LessThan captures a < comparison with the given right operand.
func (f *FirstOperand) LessThan(operand any) *SecondOperand {
	return f.compare(LessThan, operand)
}

// GreaterThan captures a > comparison with the given right operand.
func (f *FirstOperand) GreaterThan(operand any) *SecondOperand {
	return f.compare(GreaterThan, operand)
}

// Finish completes a unary decomposition: the captured operand's
// truthiness becomes the result value.
func (f *FirstOperand) Finish() (Decomposition, error) {
	return finish(f.source, unaryExpression{operand: f.operand}, f.err)
}

// SecondOperand holds a fully captured binary comparison awaiting Finish.
// It exposes no comparator methods, so a capture carries at most one
// comparator.
type SecondOperand struct {
	source   string
	operand1 any
	cmp      Comparator
	operand2 any
	err      error
}

// Finish completes a binary decomposition, applying the comparator to the
// two operands exactly once.
func (s *SecondOperand) Finish() (Decomposition, error) {
	return finish(s.source, binaryExpression{
		operand1: s.operand1,
		cmp:      s.cmp,
		operand2: s.operand2,
	}, s.err)
}

// finish evaluates the expression once and seals the result. A poisoned
// capture returns its error without evaluating.
func finish(source string, expr Expression, err error) (Decomposition, error) {
	if err != nil {
		return Decomposition{}, err
	}
	value, err := expr.eval()
	if err != nil {
		return Decomposition{}, err
	}
	return Decomposition{source: source, expr: expr, value: value}, nil
}
