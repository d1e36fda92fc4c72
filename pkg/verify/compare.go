package verify

import (
	"cmp"
	"reflect"
	"strings"
)

// equalOperands reports equality under the operands' native semantics.
// Numeric kinds compare by value across kinds, string kinds by value,
// identical comparable types by the language's own equality. Anything
// else has no native equality and is a NonComparableOperandsError.
func equalOperands(c Comparator, op1, op2 any) (bool, error) {
	if op1 == nil || op2 == nil {
		return op1 == op2, nil
	}
	v1, v2 := reflect.ValueOf(op1), reflect.ValueOf(op2)
	switch {
	case isNumericKind(v1.Kind()) && isNumericKind(v2.Kind()):
		if isFloatKind(v1.Kind()) || isFloatKind(v2.Kind()) {
			// Direct float comparison so NaN stays unequal to everything.
			return toFloat(v1) == toFloat(v2), nil
		}
		return compareInts(v1, v2) == 0, nil
	case v1.Kind() == reflect.String && v2.Kind() == reflect.String:
		return v1.String() == v2.String(), nil
	case v1.Type() == v2.Type():
		if !v1.Type().Comparable() {
			return false, &NonComparableOperandsError{Comparator: c, Left: op1, Right: op2}
		}
		return op1 == op2, nil
	default:
		return false, &NonComparableOperandsError{Comparator: c, Left: op1, Right: op2}
	}
}

// orderOperands applies an ordering comparator. Ordering is defined for
// numeric kinds (cross-kind) and string kinds; everything else, including
// nil, is a NonComparableOperandsError.
func orderOperands(c Comparator, op1, op2 any) (bool, error) {
	if op1 == nil || op2 == nil {
		return false, &NonComparableOperandsError{Comparator: c, Left: op1, Right: op2}
	}
	v1, v2 := reflect.ValueOf(op1), reflect.ValueOf(op2)
	switch {
	case isNumericKind(v1.Kind()) && isNumericKind(v2.Kind()):
		if isFloatKind(v1.Kind()) || isFloatKind(v2.Kind()) {
			// Direct comparisons preserve IEEE semantics: every ordering
			// against NaN is false.
			f1, f2 := toFloat(v1), toFloat(v2)
			switch c {
			case LessThan:
				return f1 < f2, nil
			case LessOrEqual:
				return f1 <= f2, nil
			case GreaterThan:
				return f1 > f2, nil
			default:
				return f1 >= f2, nil
			}
		}
		return applyOrder(c, compareInts(v1, v2)), nil
	case v1.Kind() == reflect.String && v2.Kind() == reflect.String:
		return applyOrder(c, strings.Compare(v1.String(), v2.String())), nil
	default:
		return false, &NonComparableOperandsError{Comparator: c, Left: op1, Right: op2}
	}
}

// applyOrder maps a three-way comparison onto an ordering comparator.
func applyOrder(c Comparator, ord int) bool {
	switch c {
	case LessThan:
		return ord < 0
	case LessOrEqual:
		return ord <= 0
	case GreaterThan:
		return ord > 0
	default:
		return ord >= 0
	}
}

// compareInts orders two integer values exactly, without routing through
// float64. Mixed signedness is handled explicitly so large uint64 values
// and negative ints order correctly.
func compareInts(v1, v2 reflect.Value) int {
	s1, s2 := isSignedKind(v1.Kind()), isSignedKind(v2.Kind())
	switch {
	case s1 && s2:
		return cmp.Compare(v1.Int(), v2.Int())
	case !s1 && !s2:
		return cmp.Compare(v1.Uint(), v2.Uint())
	case s1:
		if v1.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(v1.Int()), v2.Uint())
	default:
		return -compareInts(v2, v1)
	}
}

// toFloat widens a numeric value to float64 for mixed float comparison.
func toFloat(v reflect.Value) float64 {
	switch {
	case isFloatKind(v.Kind()):
		return v.Float()
	case isSignedKind(v.Kind()):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

// Truthy reports whether a value is truthy: nil is false, bools are
// themselves, numeric values are truthy when non-zero, strings when
// non-empty. Everything else is truthy. This is the evaluation rule for
// unary decompositions.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Bool:
		return rv.Bool()
	case rv.Kind() == reflect.String:
		return rv.String() != ""
	case isSignedKind(rv.Kind()):
		return rv.Int() != 0
	case isUnsignedKind(rv.Kind()):
		return rv.Uint() != 0
	case isFloatKind(rv.Kind()):
		return rv.Float() != 0
	default:
		return true
	}
}

func isNumericKind(k reflect.Kind) bool {
	return isSignedKind(k) || isUnsignedKind(k) || isFloatKind(k)
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
