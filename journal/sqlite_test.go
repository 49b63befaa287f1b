package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(runID string, created time.Time) RunRecord {
	return RunRecord{
		RunID:                runID,
		Kind:                 KindSimulate,
		Created:              created,
		Manifest:             "lot.csv",
		Items:                12,
		Sims:                 1000,
		Seed:                 42,
		Bid:                  350,
		ROIP5:                0.8,
		ROIP50:               1.3,
		ROIP95:               1.9,
		CashP5:               210,
		CashP50:              410,
		CashP95:              600,
		ExpectedCash:         405.5,
		ROITarget:            1.25,
		RiskThreshold:        0.8,
		ProbROIAtLeastTarget: 0.83,
		MeetsConstraints:     true,
		Notes:                "pallet 7",
	}
}

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, j.RecordRun(testRecord("run-1", created)))

	got, err := j.GetRun("run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, KindSimulate, got.Kind)
	assert.Equal(t, created.Unix(), got.Created.Unix())
	assert.Equal(t, "lot.csv", got.Manifest)
	assert.Equal(t, 12, got.Items)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, 350.0, got.Bid)
	assert.Equal(t, 1.3, got.ROIP50)
	assert.Equal(t, 405.5, got.ExpectedCash)
	assert.Equal(t, 0.83, got.ProbROIAtLeastTarget)
	assert.True(t, got.MeetsConstraints)
	assert.Equal(t, "pallet 7", got.Notes)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	_, err := j.GetRun("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListRecent(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord("run-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, j.RecordRun(rec))
	}

	runs, err := j.ListRecent(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-e", runs[0].RunID, "newest first")
	assert.Equal(t, "run-d", runs[1].RunID)
	assert.Equal(t, "run-c", runs[2].RunID)

	// Non-positive n falls back to the default page size.
	runs, err = j.ListRecent(0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestSQLiteListRunsBetween(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		rec := testRecord("run-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, j.RecordRun(rec))
	}

	// Half-open window: includes 10:00, excludes 12:00.
	runs, err := j.ListRunsBetween(base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].RunID, "oldest first")
	assert.Equal(t, "run-c", runs[1].RunID)
}

func TestSQLiteSchemaIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.sqlite")

	j1, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, j1.RecordRun(testRecord("run-1", time.Now().UTC())))
	require.NoError(t, j1.Close())

	// Reopening must keep existing rows.
	j2, err := NewSQLite(path)
	require.NoError(t, err)
	defer j2.Close()

	got, err := j2.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
}
