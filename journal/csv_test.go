package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournalRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, j.RecordRun(testRecord("run-1", created)))
	require.NoError(t, j.RecordRun(testRecord("run-2", created.Add(time.Hour))))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")

	assert.Equal(t, "run_id", rows[0][0])
	assert.Equal(t, "notes", rows[0][len(rows[0])-1])

	assert.Equal(t, "run-1", rows[1][0])
	assert.Equal(t, "simulate", rows[1][1])
	assert.Equal(t, "2026-03-14T09:30:00Z", rows[1][2])
	assert.Equal(t, "350", rows[1][7])
	assert.Equal(t, "1.3", rows[1][9])
	assert.Equal(t, "true", rows[1][18])
	assert.Equal(t, "pallet 7", rows[1][19])

	assert.Equal(t, "run-2", rows[2][0])
}

func TestCSVJournalFlushesPerRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.RecordRun(testRecord("run-1", time.Now().UTC())))

	// Readable before Close: each record is flushed as it lands.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run-1")
}
