package benchmarks

import (
	"testing"

	"github.com/randalmurphal/verify/pkg/verify"
)

// BenchmarkCapture_Comparison measures a full binary capture and
// evaluation.
func BenchmarkCapture_Comparison(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("a < b", 23).LessThan(42).Finish()
	}
}

// BenchmarkCapture_Truthiness measures a unary capture and evaluation.
func BenchmarkCapture_Truthiness(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("flag", true).Finish()
	}
}

// BenchmarkCapture_Strings measures string operand comparison.
func BenchmarkCapture_Strings(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("got == want", "production").Equal("staging").Finish()
	}
}

// BenchmarkCapture_MixedInts measures cross-kind integer comparison.
func BenchmarkCapture_MixedInts(b *testing.B) {
	var left int8 = 100
	var right uint64 = 100
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("left == right", left).Equal(right).Finish()
	}
}

// BenchmarkCapture_Rejected measures a capture poisoned at the boundary.
func BenchmarkCapture_Rejected(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("a << b", 8).Equal(32).Finish()
	}
}

// BenchmarkString measures rendering a sealed result.
func BenchmarkString(b *testing.B) {
	d, err := verify.Start("answer == expected", 42).Equal(41).Finish()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}

// BenchmarkNot measures negating a sealed result.
func BenchmarkNot(b *testing.B) {
	d, err := verify.Start("a < b", 23).LessThan(42).Finish()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d = d.Not()
	}
}

// BenchmarkBoundaryScan_Short measures scanning a short source.
func BenchmarkBoundaryScan_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start("a < b", 1).LessThan(2).Finish()
	}
}

// BenchmarkBoundaryScan_Long measures scanning a source with brackets
// and string literals to shield operators.
func BenchmarkBoundaryScan_Long(b *testing.B) {
	const source = `lookup(table["a << b"], "x || y") == expected(1, 2, 3)`
	for i := 0; i < b.N; i++ {
		_, _ = verify.Start(source, 7).Equal(7).Finish()
	}
}
