package backtest

import "time"

// Position is one trade in the ledger. Quantity is signed: positive is long,
// negative is short; magnitude is size. Quantity is never zero.
//
// A position is created only by a successful enter fill, mutated only by a
// successful exit fill (which sets ExitTime/ExitPrice and clears Open), and
// never touched again after that. The ledger owns positions for the lifetime
// of a run; strategies only ever see copies.
type Position struct {
	ID         string
	Instrument string
	Quantity   float64
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time // zero while open
	ExitPrice  float64   // zero while open
	Open       bool
}

func (p Position) IsLong() bool  { return p.Quantity > 0 }
func (p Position) IsShort() bool { return p.Quantity < 0 }

// RealizedPL is the locked-in profit of a closed position. The sign of
// Quantity already encodes direction, so quantity*(exit-entry) is correct
// for both longs and shorts. Zero while the position is open.
func (p Position) RealizedPL() float64 {
	if p.Open {
		return 0
	}
	return p.Quantity * (p.ExitPrice - p.EntryPrice)
}

// UnrealizedPL marks the position to the given price.
func (p Position) UnrealizedPL(mark float64) float64 {
	return p.Quantity * (mark - p.EntryPrice)
}

// Duration is entry-to-exit. Only meaningful for closed positions.
func (p Position) Duration() time.Duration {
	return p.ExitTime.Sub(p.EntryTime)
}
