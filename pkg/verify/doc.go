/*
Package verify decomposes boolean expressions for test assertions.

# Overview

verify captures one level of a written boolean expression, its source
text, its operand values, and its result, so that a failing assertion can
report both what was written and what the values actually were:

	verify(a < b) => verify(23 < 42) => true

The capture is a two-stage builder. Start binds the source text and the
left operand; one of six comparator methods optionally binds the operator
and the right operand; Finish evaluates the comparison exactly once and
seals the result:

	d, err := verify.Start("a < b", a).LessThan(b).Finish()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(d.String()) // verify(a < b) => verify(23 < 42) => true
	fmt.Println(d.Bool())   // true

An expression without a trailing comparison decomposes as a single
operand whose truthiness becomes the result:

	d, _ := verify.Start("ok", ok).Finish()

# Negation

Not returns the logical complement as a new value. The underlying
expression is never re-evaluated, and negating twice restores a result
identical to the original:

	n := d.Not()
	fmt.Println(n.String()) // !verify(a < b) => !verify(23 < 42) => false
	fmt.Println(n.Not() == d) // true in observed value and rendering

# Comparison Semantics

Operands keep their own types end to end. Comparators dispatch to the
operands' native semantics: numeric kinds compare by value across kinds
with exact integer paths, string kinds compare lexicographically, and
identical comparable types use the language's own equality. Pairs with no
native comparison surface NonComparableOperandsError from Finish.

# Rejected Expressions

Source text using <<, >>, && or || at the top level cannot be decomposed:
shifts collide with the capture itself and the logical operators would
need short-circuit evaluation. Start poisons the capture and Finish
returns UnsupportedOperatorError before anything is evaluated.
Parenthesized forms such as "(a && b) == c" are ordinary operands and
pass.

# Evaluation Contract

Operands are bound once at capture and the comparison runs exactly once
at Finish. Printing, negating, and querying the result afterwards never
re-evaluate, so operand expressions with side effects fire once per
decomposition. All failures are construction-time: once Finish returns a
Decomposition, no operation on it can fail.

# Subpackages

  - check: testing.TB bridge that fails tests on false decompositions
  - checklist: declarative YAML/JSON suites of independent checks
  - journal: persisted record of decomposition outcomes (memory, SQLite)
  - observe: logging, metrics, and tracing helpers
  - registry: generic thread-safe registry used by journal and checklist
*/
package verify
