package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/verify/pkg/verify"
	"github.com/randalmurphal/verify/pkg/verify/journal"
	"github.com/randalmurphal/verify/pkg/verify/observe"
)

// Engine runs checklists and records their outcomes.
//
// Engine is safe for concurrent use. Each Run gets its own run ID, and
// checks within a run are evaluated sequentially and independently: a
// failed or errored check never stops the run.
type Engine struct {
	store   journal.Store
	driver  string
	logger  *slog.Logger
	metrics observe.MetricsRecorder
	spans   observe.SpanManager
}

// Option configures an Engine.
type Option func(*Engine)

// NewEngine creates an engine with the given options.
// Without options the engine evaluates checks with no journal, no
// logging, and no-op metrics and tracing.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		metrics: observe.NoopMetrics{},
		spans:   observe.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithJournal persists every evaluated check to store.
// Journal failures are logged but do not fail the run.
func WithJournal(store journal.Store) Option {
	return func(e *Engine) {
		e.store = store
		e.driver = driverName(store)
	}
}

// WithLogger enables structured logging for runs and checks.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Example:
//
//	engine := checklist.NewEngine(
//	    checklist.WithMetrics(observe.NewMetricsRecorder()),
//	)
func WithMetrics(m observe.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithTracing sets the span manager.
//
// Example:
//
//	engine := checklist.NewEngine(
//	    checklist.WithTracing(observe.NewSpanManager()),
//	)
func WithTracing(sm observe.SpanManager) Option {
	return func(e *Engine) {
		if sm != nil {
			e.spans = sm
		}
	}
}

// driverName labels a journal store for metrics.
func driverName(store journal.Store) string {
	switch store.(type) {
	case *journal.MemoryStore:
		return "memory"
	case *journal.SQLiteStore:
		return "sqlite"
	default:
		return "custom"
	}
}

// Outcome is the result of one evaluated check.
type Outcome struct {
	Source   string // expression text, explicit or synthesized
	Rendered string // value-substituted expression text
	Passed   bool   // recorded result, negation applied
	Negated  bool   // whether the check was negated
	Err      error  // non-nil when the check could not be evaluated
}

// Summary aggregates the outcomes of one checklist run.
type Summary struct {
	RunID    string
	Name     string
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Duration time.Duration
	Outcomes []Outcome
}

// OK reports whether every check passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Run evaluates every check in the list and returns a summary.
//
// The list is validated first; an invalid list aborts the run before
// any check is evaluated. After that, checks run in order and each
// outcome is recorded even when earlier checks failed. Run returns an
// error only for an invalid list or a cancelled context.
func (e *Engine) Run(ctx context.Context, list Checklist) (Summary, error) {
	if err := list.Validate(); err != nil {
		return Summary{}, err
	}

	runID := uuid.New().String()
	name := list.Name
	if name == "" {
		name = "checklist"
	}

	startTime := time.Now()
	observe.LogRunStart(e.logger, runID, name, len(list.Checks))

	// Check-level log lines carry the run context.
	runLog := observe.EnrichLogger(e.logger, runID, name)

	runCtx, runSpan := e.spans.StartRunSpan(ctx, name, runID)

	summary := Summary{RunID: runID, Name: name, Total: len(list.Checks)}
	var runErr error

	for i, item := range list.Checks {
		// Check for cancellation before each evaluation
		select {
		case <-runCtx.Done():
			runErr = fmt.Errorf("run cancelled after %d of %d checks: %w",
				i, len(list.Checks), runCtx.Err())
		default:
		}
		if runErr != nil {
			break
		}

		outcome := e.runCheck(runCtx, runID, runLog, item)
		summary.Outcomes = append(summary.Outcomes, outcome)

		switch {
		case outcome.Err != nil:
			summary.Errored++
		case outcome.Passed:
			summary.Passed++
		default:
			summary.Failed++
		}
	}

	summary.Duration = time.Since(startTime)
	durationMs := float64(summary.Duration.Milliseconds())

	e.metrics.RecordRun(runCtx, runErr == nil && summary.OK(), summary.Duration)
	e.spans.EndSpanWithError(runSpan, runErr)

	if runErr != nil {
		lastSource := ""
		if n := len(summary.Outcomes); n > 0 {
			lastSource = summary.Outcomes[n-1].Source
		}
		observe.LogRunError(e.logger, runID, runErr, durationMs, lastSource)
		return summary, runErr
	}

	observe.LogRunComplete(e.logger, runID, durationMs,
		summary.Passed, summary.Failed, summary.Errored)
	return summary, nil
}

// runCheck evaluates a single check with full observability.
func (e *Engine) runCheck(ctx context.Context, runID string, log *slog.Logger, item Item) Outcome {
	source := item.sourceText()

	observe.LogCheckStart(log, source)
	checkCtx, span := e.spans.StartCheckSpan(ctx, source)

	checkStart := time.Now()
	d, err := evaluate(source, item)
	duration := time.Since(checkStart)
	durationMs := float64(duration.Milliseconds())

	outcome := Outcome{Source: source, Negated: item.Negate}
	if err != nil {
		outcome.Err = err
		observe.LogCheckError(log, source, err)
	} else {
		if item.Negate {
			d = d.Not()
		}
		outcome.Rendered = d.Rendered()
		outcome.Passed = d.Bool()
		observe.LogCheckResult(log, source, outcome.Rendered, outcome.Passed, durationMs)
	}

	if err == nil && e.store != nil {
		rec := journal.NewRecord(runID, d)
		if jerr := e.store.Append(rec); jerr != nil {
			observe.LogJournalError(log, source, "append", jerr)
		} else {
			e.metrics.RecordJournalAppend(checkCtx, e.driver)
			e.spans.AddSpanEvent(checkCtx, "journal_appended",
				attribute.String("record_id", rec.ID),
			)
		}
	}

	e.metrics.RecordCheck(checkCtx, source, outcome.Passed, duration, err)
	e.spans.EndSpanWithError(span, err)

	return outcome
}

// evaluate captures and evaluates one check.
func evaluate(source string, item Item) (verify.Decomposition, error) {
	first := verify.Start(source, item.Left)
	if item.Comparator == "" {
		return first.Finish()
	}

	cmp, err := ParseComparator(item.Comparator)
	if err != nil {
		return verify.Decomposition{}, err
	}
	return applyComparator(first, cmp, item.Right).Finish()
}

// applyComparator binds the right operand using the comparator's
// capture method.
func applyComparator(first *verify.FirstOperand, cmp verify.Comparator, right any) *verify.SecondOperand {
	switch cmp {
	case verify.Equal:
		return first.Equal(right)
	case verify.NotEqual:
		return first.NotEqual(right)
	case verify.LessOrEqual:
		return first.LessOrEqual(right)
	case verify.GreaterOrEqual:
		return first.GreaterOrEqual(right)
	case verify.LessThan:
		return first.LessThan(right)
	default:
		return first.GreaterThan(right)
	}
}
