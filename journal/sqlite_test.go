package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteJournal {
	t.Helper()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestDB(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	run := RunRecord{
		RunID:          "01RUN",
		Created:        start,
		Strategy:       "sma-cross",
		Dataset:        "spy_daily.csv",
		Start:          start,
		End:            start.AddDate(0, 0, 9),
		StartingEquity: 100_000,
		FinalEquity:    100_250,
		TotalPnL:       250,
		Trades:         2,
		Wins:           1,
		Losses:         1,
	}
	require.NoError(t, j.RecordRun(run))

	got, err := j.GetRun("01RUN")
	require.NoError(t, err)
	assert.Equal(t, run.Strategy, got.Strategy)
	assert.Equal(t, run.Trades, got.Trades)
	assert.InDelta(t, run.TotalPnL, got.TotalPnL, 1e-9)
	assert.True(t, got.Start.Equal(run.Start))
}

func TestSQLitePositions(t *testing.T) {
	t.Parallel()

	j := newTestDB(t)
	entry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	recs := []PositionRecord{
		{
			RunID: "01RUN", PositionID: "01AAA", Instrument: "SPY",
			Quantity: 10, EntryTime: entry, EntryPrice: 100,
			ExitTime: entry.AddDate(0, 0, 2), ExitPrice: 104, RealizedPL: 40,
		},
		{
			RunID: "01RUN", PositionID: "01BBB", Instrument: "SPY",
			Quantity: -5, EntryTime: entry.AddDate(0, 0, 1), EntryPrice: 102,
			Open: true,
		},
	}
	for _, r := range recs {
		require.NoError(t, j.RecordPosition(r))
	}

	got, err := j.ListPositionsByRun("01RUN")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "01AAA", got[0].PositionID)
	assert.InDelta(t, 40.0, got[0].RealizedPL, 1e-9)
	assert.False(t, got[0].Open)
	assert.True(t, got[1].Open)

	missing, err := j.ListPositionsByRun("nope")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestSQLitePnLRows(t *testing.T) {
	t.Parallel()

	j := newTestDB(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, j.RecordPnL(PnLRecord{
			RunID:    "01RUN",
			Time:     start.AddDate(0, 0, i),
			Cash:     100_000,
			Equity:   100_000 + float64(i),
			TotalPnL: float64(i),
		}))
	}

	rows, err := j.ListPnLByRun("01RUN")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.InDelta(t, 2.0, rows[2].TotalPnL, 1e-9)
	assert.True(t, rows[0].Time.Before(rows[2].Time))
}

func TestSQLiteGetRunMissing(t *testing.T) {
	t.Parallel()

	j := newTestDB(t)
	_, err := j.GetRun("missing")
	assert.Error(t, err)
}
