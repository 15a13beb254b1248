// Package journal persists completed backtest runs: the run summary, the
// full position ledger and the per-interval PnL rows. SQLite and CSV
// backends are provided.
package journal

import "time"

// RunRecord summarizes one completed run.
type RunRecord struct {
	RunID    string
	Created  time.Time
	Strategy string
	Dataset  string

	Start time.Time
	End   time.Time

	StartingEquity float64
	FinalEquity    float64
	TotalPnL       float64

	Trades int
	Wins   int
	Losses int
}

// PositionRecord is one ledger row.
type PositionRecord struct {
	RunID      string
	PositionID string
	Instrument string
	Quantity   float64
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64
	RealizedPL float64
	Open       bool
}

// PnLRecord is one interval of the PnL table.
type PnLRecord struct {
	RunID    string
	Time     time.Time
	Cash     float64
	Equity   float64
	TotalPnL float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordPosition(PositionRecord) error
	RecordPnL(PnLRecord) error
	Close() error
}
