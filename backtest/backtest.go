// Package backtest simulates a trading strategy against historical OHLCV
// candles and produces a per-interval PnL table, an equity curve and summary
// performance statistics.
//
// The engine is synchronous and single-threaded: intervals are processed in
// timestamp order, and within an interval exit orders are always applied
// before enter orders. One Backtest drives one run; use a fresh instance per
// run.
package backtest

import (
	"fmt"
	"math"
	"time"

	"github.com/rustyeddy/backtest/pricing"
)

// Strategy is the user-supplied trading logic. OnCandle is called once per
// interval with the history up to and including the current bar (never any
// future data) and a read-only snapshot of the open positions. It returns
// the orders to execute against the next bar, in order.
//
// The history slice and the book are owned by the engine; OnCandle must not
// mutate either. A strategy may keep arbitrary internal state across calls.
type Strategy interface {
	OnCandle(history []pricing.Candle, book *PositionsBook) ([]Order, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(history []pricing.Candle, book *PositionsBook) ([]Order, error)

func (f StrategyFunc) OnCandle(history []pricing.Candle, book *PositionsBook) ([]Order, error) {
	return f(history, book)
}

const (
	DefaultStartingEquity = 100_000.0

	// DefaultPeriodsPerYear annualizes the Sharpe ratio assuming daily bars.
	DefaultPeriodsPerYear = 252.0
)

// Option configures a Backtest at construction.
type Option func(*Backtest)

// WithStartingEquity sets the starting cash. Pass math.Inf(1) for an
// unconstrained run: buying power is never checked and reporting treats the
// cash base as zero.
func WithStartingEquity(equity float64) Option {
	return func(bt *Backtest) { bt.startingEquity = equity }
}

// WithPeriodsPerYear sets the bar frequency used to annualize the Sharpe
// ratio, e.g. 252 for daily bars or 252*24 for hourly.
func WithPeriodsPerYear(n float64) Option {
	return func(bt *Backtest) { bt.periodsPerYear = n }
}

// Backtest drives one run: it owns the ledger and cash balance while the
// loop executes and exposes them read-only afterwards.
type Backtest struct {
	data     []pricing.Candle
	strategy Strategy

	startingEquity float64
	periodsPerYear float64

	cash   float64
	ledger []*Position

	pnl  *PnLTable
	ran  bool
	done bool
}

// New validates the candle series and builds a Backtest. The series must be
// strictly increasing in time with finite fields; anything else fails here,
// before the loop starts, wrapping ErrInvalidInput.
func New(data []pricing.Candle, strategy Strategy, opts ...Option) (*Backtest, error) {
	if strategy == nil {
		return nil, fmt.Errorf("backtest: nil strategy")
	}
	if err := validateCandles(data); err != nil {
		return nil, err
	}

	bt := &Backtest{
		data:           data,
		strategy:       strategy,
		startingEquity: DefaultStartingEquity,
		periodsPerYear: DefaultPeriodsPerYear,
	}
	for _, opt := range opts {
		opt(bt)
	}

	if bt.startingEquity < 0 || math.IsNaN(bt.startingEquity) {
		return nil, fmt.Errorf("%w: starting equity %v", ErrInvalidInput, bt.startingEquity)
	}
	bt.cash = bt.cashBase()
	return bt, nil
}

func validateCandles(data []pricing.Candle) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no candles", ErrInvalidInput)
	}
	for i, c := range data {
		if c.Time.IsZero() {
			return fmt.Errorf("%w: candle %d has no timestamp", ErrInvalidInput, i)
		}
		if i > 0 && !data[i-1].Time.Before(c.Time) {
			return fmt.Errorf("%w: candles not strictly time-ordered at %d (%s then %s)",
				ErrInvalidInput, i, data[i-1].Time.Format(time.RFC3339), c.Time.Format(time.RFC3339))
		}
		for _, v := range []float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite field in candle %d at %s",
					ErrInvalidInput, i, c.Time.Format(time.RFC3339))
			}
		}
	}
	return nil
}

// unconstrained runs skip all buying-power checks.
func (bt *Backtest) unconstrained() bool {
	return math.IsInf(bt.startingEquity, 1)
}

// cashBase is the starting cash used for accounting and reporting.
func (bt *Backtest) cashBase() float64 {
	if bt.unconstrained() {
		return 0
	}
	return bt.startingEquity
}

// Run executes the simulation to completion. Orders returned by the strategy
// at interval i fill against bar i+1, so the last bar can only close
// positions, never open new ones. No implicit liquidation happens at the
// end: positions the strategy leaves open stay open in the ledger.
//
// Any fatal error aborts in place. The ledger then reflects the last
// successful fill, which is useful for post-mortem inspection, but PnL and
// Stats stay unavailable because the run is not a valid result.
func (bt *Backtest) Run() error {
	if bt.ran {
		return fmt.Errorf("backtest: Run called twice; use a fresh Backtest per run")
	}
	bt.ran = true

	for i := 0; i+1 < len(bt.data); i++ {
		history := bt.data[: i+1 : i+1]
		next := bt.data[i+1]

		// Open shorts must stay coverable. If marking them at the next open
		// exhausts the cash, the account is bust and the simulation stops.
		if !bt.unconstrained() {
			if bp := bt.buyingPower(next.Open); bp < 0 {
				return fmt.Errorf("%w: buying power %.2f at open of %s; the strategy was liquidated",
					ErrInsufficientCapital, bp, next.Time.Format(time.RFC3339))
			}
		}

		book := newPositionsBook(bt.ledger, history[len(history)-1].Close)

		orders, err := bt.strategy.OnCandle(history, book)
		if err != nil {
			return fmt.Errorf("strategy: %w", err)
		}

		if err := bt.applyOrders(orders, next); err != nil {
			return err
		}
	}

	bt.pnl = computePnL(bt.data, bt.ledger, bt.cashBase())
	bt.done = true
	return nil
}

// Ledger returns copies of every position ever created, in creation order,
// open and closed alike. Valid even after an aborted run.
func (bt *Backtest) Ledger() []Position {
	out := make([]Position, len(bt.ledger))
	for i, p := range bt.ledger {
		out[i] = *p
	}
	return out
}

// PnL returns the per-interval accounting table. Nil until Run completes.
func (bt *Backtest) PnL() *PnLTable {
	if !bt.done {
		return nil
	}
	return bt.pnl
}

// Stats derives the summary metrics of a completed run.
func (bt *Backtest) Stats() (Stats, error) {
	if !bt.done {
		return Stats{}, fmt.Errorf("backtest: run did not complete; no stats")
	}
	return computeStats(bt.data, bt.Ledger(), bt.pnl, bt.startingEquity, bt.periodsPerYear), nil
}
