// Package journal persists verification outcomes grouped by run.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/verify/pkg/verify"
	"github.com/randalmurphal/verify/pkg/verify/registry"
)

// Record is one persisted verification outcome.
type Record struct {
	ID        string    // unique record identifier
	RunID     string    // groups the records of one run
	Source    string    // verbatim captured expression
	Rendered  string    // value-substituted expression text
	Value     bool      // observed boolean
	Negated   bool      // whether the result was negated
	CreatedAt time.Time // append time, UTC
}

// NewRecord builds a Record from a decomposition with a fresh ID and
// timestamp.
func NewRecord(runID string, d verify.Decomposition) Record {
	return Record{
		ID:        uuid.New().String(),
		RunID:     runID,
		Source:    d.Source(),
		Rendered:  d.Rendered(),
		Value:     d.Bool(),
		Negated:   d.Negated(),
		CreatedAt: time.Now().UTC(),
	}
}

// RunInfo summarizes the records of one run.
type RunInfo struct {
	RunID   string
	Records int
	First   time.Time
	Last    time.Time
}

// Store persists verification records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores a record. Records are immutable once appended.
	Append(rec Record) error

	// List returns a run's records in append order.
	// Returns ErrNotFound if the run has no records.
	List(runID string) ([]Record, error)

	// Runs summarizes all runs, ordered by first record time.
	Runs() ([]RunInfo, error)

	// DeleteRun removes all records for a run.
	// Returns nil if the run has no records.
	DeleteRun(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for journal operations.
var (
	// ErrNotFound indicates a run has no records.
	ErrNotFound = errors.New("journal run not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")
)

// Opener creates a Store from a driver-specific data source name.
type Opener func(dsn string) (Store, error)

// drivers maps driver names to store constructors.
var drivers = registry.New[string, Opener]()

// RegisterDriver makes a store constructor available to Open. Later
// registrations replace earlier ones.
func RegisterDriver(name string, open Opener) {
	drivers.Register(name, open)
}

// Open creates a Store using a registered driver. The built-in drivers
// are "memory" (dsn ignored) and "sqlite" (dsn is the database path).
func Open(name, dsn string) (Store, error) {
	open, ok := drivers.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown journal driver %q", name)
	}
	return open(dsn)
}

// Drivers returns the registered driver names.
// The order is not guaranteed.
func Drivers() []string {
	return drivers.Keys()
}
