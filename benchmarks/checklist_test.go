package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/verify/pkg/verify/checklist"
	"github.com/randalmurphal/verify/pkg/verify/journal"
)

// BenchmarkEngineRun_5 runs a 5-check list.
func BenchmarkEngineRun_5(b *testing.B) {
	engine := checklist.NewEngine()
	list := buildList(5)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Run(ctx, list)
	}
}

// BenchmarkEngineRun_50 runs a 50-check list.
func BenchmarkEngineRun_50(b *testing.B) {
	engine := checklist.NewEngine()
	list := buildList(50)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Run(ctx, list)
	}
}

// BenchmarkEngineRun_WithJournal measures a run with journaling enabled.
func BenchmarkEngineRun_WithJournal(b *testing.B) {
	engine := checklist.NewEngine(checklist.WithJournal(journal.NewMemoryStore()))
	list := buildList(5)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Run(ctx, list)
	}
}

// BenchmarkEngineRun_WithoutJournal baseline without journaling.
func BenchmarkEngineRun_WithoutJournal(b *testing.B) {
	engine := checklist.NewEngine()
	list := buildList(5)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Run(ctx, list)
	}
}

// BenchmarkParseComparator measures comparator alias resolution.
func BenchmarkParseComparator(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = checklist.ParseComparator("ge")
	}
}

// BenchmarkValidate_50 validates a 50-check list.
func BenchmarkValidate_50(b *testing.B) {
	list := buildList(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = list.Validate()
	}
}

func buildList(n int) checklist.Checklist {
	list := checklist.Checklist{Name: "bench"}
	for i := 0; i < n; i++ {
		list.Checks = append(list.Checks, checklist.Item{
			Left:       i,
			Comparator: "<=",
			Right:      n,
			Source:     "i <= n",
		})
	}
	return list
}
