package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // sqlite driver
)

// SQLiteStore persists records to a SQLite database file, so runs
// survive process restarts.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// timeLayout is RFC 3339 with fixed-width nanoseconds. Timestamps are
// stored in UTC, so lexicographic order on the column is chronological
// and MIN/MAX aggregate correctly.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func init() {
	RegisterDriver("sqlite", func(dsn string) (Store, error) {
		return NewSQLiteStore(dsn)
	})
}

// NewSQLiteStore opens or creates a SQLite journal at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode allows concurrent readers during writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id         TEXT PRIMARY KEY,
			run_id     TEXT NOT NULL,
			source     TEXT NOT NULL,
			rendered   TEXT NOT NULL,
			value      INTEGER NOT NULL,
			negated    INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append stores a record.
func (s *SQLiteStore) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO records (id, run_id, source, rendered, value, negated, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RunID, rec.Source, rec.Rendered,
		rec.Value, rec.Negated, rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// List returns a run's records in append order.
func (s *SQLiteStore) List(runID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, run_id, source, rendered, value, negated, created_at
		FROM records
		WHERE run_id = ?
		ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs, nil
}

// Runs summarizes all runs, ordered by first record time.
func (s *SQLiteStore) Runs() ([]RunInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT run_id, COUNT(*), MIN(created_at), MAX(created_at)
		FROM records
		GROUP BY run_id
		ORDER BY MIN(created_at), run_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var info RunInfo
		var first, last string
		if err := rows.Scan(&info.RunID, &info.Records, &first, &last); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if info.First, err = time.Parse(timeLayout, first); err != nil {
			return nil, fmt.Errorf("parse first timestamp: %w", err)
		}
		if info.Last, err = time.Parse(timeLayout, last); err != nil {
			return nil, fmt.Errorf("parse last timestamp: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return infos, nil
}

// DeleteRun removes all records for a run.
func (s *SQLiteStore) DeleteRun(runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec("DELETE FROM records WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var created string
	err := rows.Scan(
		&rec.ID, &rec.RunID, &rec.Source, &rec.Rendered,
		&rec.Value, &rec.Negated, &created,
	)
	if err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Record{}, fmt.Errorf("parse timestamp: %w", err)
	}
	return rec, nil
}
