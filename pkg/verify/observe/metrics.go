package observe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records verification metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCheck records a check evaluation with its outcome and duration.
	RecordCheck(ctx context.Context, source string, passed bool, duration time.Duration, err error)

	// RecordRun records a checklist run completion.
	RecordRun(ctx context.Context, success bool, duration time.Duration)

	// RecordJournalAppend records a journal append operation.
	RecordJournalAppend(ctx context.Context, driver string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	checkEvaluations metric.Int64Counter
	checkLatency     metric.Float64Histogram
	checkErrors      metric.Int64Counter
	checklistRuns    metric.Int64Counter
	checklistLatency metric.Float64Histogram
	journalAppends   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("verify")

	checkEvaluations, err := meter.Int64Counter("verify.check.evaluations",
		metric.WithDescription("Number of check evaluations"),
	)
	if err != nil {
		return nil, err
	}

	checkLatency, err := meter.Float64Histogram("verify.check.latency_ms",
		metric.WithDescription("Check evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	checkErrors, err := meter.Int64Counter("verify.check.errors",
		metric.WithDescription("Number of check evaluation errors"),
	)
	if err != nil {
		return nil, err
	}

	checklistRuns, err := meter.Int64Counter("verify.checklist.runs",
		metric.WithDescription("Number of checklist runs"),
	)
	if err != nil {
		return nil, err
	}

	checklistLatency, err := meter.Float64Histogram("verify.checklist.latency_ms",
		metric.WithDescription("Checklist run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	journalAppends, err := meter.Int64Counter("verify.journal.appends",
		metric.WithDescription("Number of journal append operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		checkEvaluations: checkEvaluations,
		checkLatency:     checkLatency,
		checkErrors:      checkErrors,
		checklistRuns:    checklistRuns,
		checklistLatency: checklistLatency,
		journalAppends:   journalAppends,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCheck records a check evaluation.
func (m *otelMetrics) RecordCheck(ctx context.Context, source string, passed bool, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("source", source),
		attribute.Bool("passed", passed),
	}

	m.checkEvaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.checkLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.checkErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("source", source),
		))
	}
}

// RecordRun records a checklist run.
func (m *otelMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.checklistRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.checklistLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordJournalAppend records a journal append.
func (m *otelMetrics) RecordJournalAppend(ctx context.Context, driver string) {
	m.journalAppends.Add(ctx, 1, metric.WithAttributes(
		attribute.String("driver", driver),
	))
}
