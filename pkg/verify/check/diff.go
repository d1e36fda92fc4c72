package check

import (
	"github.com/google/go-cmp/cmp"
)

// diffValues deep-compares two values and renders a diff when they
// differ. Returns ok=false when the values cannot be compared at all,
// such as types with unexported fields and no Equal method.
func diffValues(left, right any) (eq bool, diff string, ok bool) {
	defer func() {
		if recover() != nil {
			eq, diff, ok = false, "", false
		}
	}()

	eq = cmp.Equal(left, right)
	if !eq {
		diff = cmp.Diff(left, right)
	}
	return eq, diff, true
}
