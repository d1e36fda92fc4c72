// Package observe provides production-grade observability features for
// verification runs: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observe

import (
	"log/slog"
	"time"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with run_id and checklist fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "smoke")
//	enriched.Info("doing work") // includes run_id, checklist
func EnrichLogger(logger *slog.Logger, runID, listName string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("checklist", listName),
	)
}

// LogRunStart logs the start of a checklist run.
func LogRunStart(logger *slog.Logger, runID, listName string, total int) {
	if logger == nil {
		return
	}
	logger.Info("checklist run starting",
		slog.String("run_id", runID),
		slog.String("checklist", listName),
		slog.Int("checks", total),
	)
}

// LogRunComplete logs checklist run completion.
func LogRunComplete(logger *slog.Logger, runID string, durationMs float64, passed, failed, errored int) {
	if logger == nil {
		return
	}
	logger.Info("checklist run completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("passed", passed),
		slog.Int("failed", failed),
		slog.Int("errored", errored),
	)
}

// LogRunError logs checklist run failure.
func LogRunError(logger *slog.Logger, runID string, err error, durationMs float64, lastSource string) {
	if logger == nil {
		return
	}
	logger.Error("checklist run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
		slog.String("last_check", lastSource),
	)
}

// LogCheckStart logs check evaluation start.
func LogCheckStart(logger *slog.Logger, source string) {
	if logger == nil {
		return
	}
	logger.Debug("check starting",
		slog.String("source", source),
	)
}

// LogCheckResult logs a completed check evaluation.
func LogCheckResult(logger *slog.Logger, source, rendered string, passed bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("check evaluated",
		slog.String("source", source),
		slog.String("rendered", rendered),
		slog.Bool("passed", passed),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCheckError logs a check that could not be evaluated.
func LogCheckError(logger *slog.Logger, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("check failed",
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

// LogJournalError logs journal failure (non-fatal).
func LogJournalError(logger *slog.Logger, source string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal failed",
		slog.String("source", source),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
