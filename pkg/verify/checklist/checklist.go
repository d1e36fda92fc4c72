package checklist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for checklist validation.
var (
	// ErrNoChecks indicates a checklist without any checks.
	ErrNoChecks = errors.New("checklist has no checks")

	// ErrUnknownComparator indicates a comparator string with no registered alias.
	ErrUnknownComparator = errors.New("unknown comparator")
)

// Item is one declarative check.
//
// A check with a comparator evaluates Left against Right. A check
// without a comparator evaluates the truthiness of Left alone.
// Negate flips the recorded result without re-evaluating.
type Item struct {
	// Source is the expression text reported for this check.
	// When empty, a source is synthesized from the operands.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`

	Left       any    `yaml:"left" json:"left"`
	Comparator string `yaml:"comparator,omitempty" json:"comparator,omitempty"`
	Right      any    `yaml:"right,omitempty" json:"right,omitempty"`
	Negate     bool   `yaml:"negate,omitempty" json:"negate,omitempty"`
}

// sourceText returns the item's explicit source, or synthesizes one
// from its operands.
func (item Item) sourceText() string {
	if item.Source != "" {
		return item.Source
	}
	if item.Comparator == "" {
		return renderOperand(item.Left)
	}
	op := strings.TrimSpace(item.Comparator)
	if cmp, err := ParseComparator(item.Comparator); err == nil {
		op = cmp.String()
	}
	return fmt.Sprintf("%s %s %s", renderOperand(item.Left), op, renderOperand(item.Right))
}

// renderOperand formats an operand for a synthesized source. Strings
// are quoted so the synthesized text reads as it would in code.
func renderOperand(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

// Checklist is a named list of checks, usually loaded from a file.
type Checklist struct {
	Name   string `yaml:"name" json:"name"`
	Checks []Item `yaml:"checks" json:"checks"`
}

// Validate checks the list for problems that would prevent a run.
// Multiple errors are joined together.
//
// Validation checks:
//  1. The list must contain at least one check
//  2. Every non-empty comparator must resolve to a known alias
func (c Checklist) Validate() error {
	var errs []error

	if len(c.Checks) == 0 {
		errs = append(errs, ErrNoChecks)
	}

	for i, item := range c.Checks {
		if item.Comparator == "" {
			continue
		}
		if _, err := ParseComparator(item.Comparator); err != nil {
			errs = append(errs, fmt.Errorf("check %d: %w", i, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
