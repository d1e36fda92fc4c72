package checklist

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/verify/pkg/verify"
	"github.com/randalmurphal/verify/pkg/verify/registry"
)

// comparators maps alias strings to comparator tags.
var comparators = registry.New[string, verify.Comparator]()

func init() {
	for alias, cmp := range map[string]verify.Comparator{
		"==":               verify.Equal,
		"eq":               verify.Equal,
		"equal":            verify.Equal,
		"!=":               verify.NotEqual,
		"ne":               verify.NotEqual,
		"not-equal":        verify.NotEqual,
		"<=":               verify.LessOrEqual,
		"le":               verify.LessOrEqual,
		"less-or-equal":    verify.LessOrEqual,
		">=":               verify.GreaterOrEqual,
		"ge":               verify.GreaterOrEqual,
		"greater-or-equal": verify.GreaterOrEqual,
		"<":                verify.LessThan,
		"lt":               verify.LessThan,
		"less-than":        verify.LessThan,
		">":                verify.GreaterThan,
		"gt":               verify.GreaterThan,
		"greater-than":     verify.GreaterThan,
	} {
		comparators.Register(alias, cmp)
	}
}

// ParseComparator resolves a comparator alias such as "==" or "ge".
// Aliases are case-insensitive and surrounding whitespace is ignored.
func ParseComparator(s string) (verify.Comparator, error) {
	cmp, ok := comparators.Get(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownComparator, s)
	}
	return cmp, nil
}

// RegisterAlias adds a comparator alias for use in checklist files.
// Later registrations replace earlier ones.
func RegisterAlias(alias string, cmp verify.Comparator) {
	comparators.Register(strings.ToLower(strings.TrimSpace(alias)), cmp)
}
