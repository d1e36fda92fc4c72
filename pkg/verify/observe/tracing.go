package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the verify tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("verify")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRunSpan starts a span for an entire checklist run.
	// Returns the context with span and the span itself.
	StartRunSpan(ctx context.Context, listName, runID string) (context.Context, trace.Span)

	// StartCheckSpan starts a span for a single check evaluation.
	// The check span should be a child of the run span.
	StartCheckSpan(ctx context.Context, source string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRunSpan starts a span for an entire checklist run.
func (m *otelSpanManager) StartRunSpan(ctx context.Context, listName, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "verify.run",
		trace.WithAttributes(
			attribute.String("checklist.name", listName),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCheckSpan starts a span for a single check evaluation.
func (m *otelSpanManager) StartCheckSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "verify.check",
		trace.WithAttributes(
			attribute.String("check.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartRunSpan starts a span for an entire checklist run.
// Uses the global OTel tracer.
func StartRunSpan(ctx context.Context, listName, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "verify.run",
		trace.WithAttributes(
			attribute.String("checklist.name", listName),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCheckSpan starts a span for a single check evaluation.
// Uses the global OTel tracer.
func StartCheckSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "verify.check",
		trace.WithAttributes(
			attribute.String("check.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
