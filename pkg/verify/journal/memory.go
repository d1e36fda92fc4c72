package journal

import (
	"sort"
	"sync"
)

// MemoryStore keeps records in memory. Data is lost when the process
// exits, which suits tests and one-shot runs.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   map[string][]Record
	closed bool
}

func init() {
	RegisterDriver("memory", func(string) (Store, error) {
		return NewMemoryStore(), nil
	})
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string][]Record),
	}
}

// Append stores a record.
func (m *MemoryStore) Append(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.runs[rec.RunID] = append(m.runs[rec.RunID], rec)
	return nil
}

// List returns a run's records in append order.
func (m *MemoryStore) List(runID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	recs, ok := m.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate stored records.
	out := make([]Record, len(recs))
	copy(out, recs)
	return out, nil
}

// Runs summarizes all runs, ordered by first record time.
func (m *MemoryStore) Runs() ([]RunInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]RunInfo, 0, len(m.runs))
	for runID, recs := range m.runs {
		infos = append(infos, RunInfo{
			RunID:   runID,
			Records: len(recs),
			First:   recs[0].CreatedAt,
			Last:    recs[len(recs)-1].CreatedAt,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].First.Equal(infos[j].First) {
			return infos[i].RunID < infos[j].RunID
		}
		return infos[i].First.Before(infos[j].First)
	})
	return infos, nil
}

// DeleteRun removes all records for a run.
func (m *MemoryStore) DeleteRun(runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.runs, runID)
	return nil
}

// Close marks the store closed and releases its data.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.runs = nil
	return nil
}

// Len returns the total number of stored records.
// Useful for tests.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, recs := range m.runs {
		n += len(recs)
	}
	return n
}
