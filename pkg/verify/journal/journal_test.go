package journal_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/verify/pkg/verify"
	"github.com/randalmurphal/verify/pkg/verify/journal"
)

func TestNewRecord_FromDecomposition(t *testing.T) {
	d, err := verify.Start("a < b", 23).LessThan(42).Finish()
	require.NoError(t, err)

	before := time.Now().UTC()
	rec := journal.NewRecord("run-1", d.Not())

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "run-1", rec.RunID)
	assert.Equal(t, "a < b", rec.Source)
	assert.Equal(t, "23 < 42", rec.Rendered)
	assert.False(t, rec.Value)
	assert.True(t, rec.Negated)
	assert.False(t, rec.CreatedAt.Before(before))
}

func TestNewRecord_UniqueIDs(t *testing.T) {
	d, err := verify.Start("ok", true).Finish()
	require.NoError(t, err)

	a := journal.NewRecord("run-1", d)
	b := journal.NewRecord("run-1", d)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOpen_BuiltinDrivers(t *testing.T) {
	assert.Contains(t, journal.Drivers(), "memory")
	assert.Contains(t, journal.Drivers(), "sqlite")

	mem, err := journal.Open("memory", "")
	require.NoError(t, err)
	defer mem.Close()
	assert.IsType(t, &journal.MemoryStore{}, mem)

	dbPath := filepath.Join(t.TempDir(), "journal.db")
	lite, err := journal.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer lite.Close()
	assert.IsType(t, &journal.SQLiteStore{}, lite)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := journal.Open("bolt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bolt")
}

func TestRegisterDriver_Custom(t *testing.T) {
	journal.RegisterDriver("test-custom", func(string) (journal.Store, error) {
		return journal.NewMemoryStore(), nil
	})

	store, err := journal.Open("test-custom", "ignored")
	require.NoError(t, err)
	defer store.Close()

	rec := journal.Record{ID: "rec-1", RunID: "run-1", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Append(rec))

	recs, err := store.List("run-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
