package strategies

import (
	"github.com/rustyeddy/backtest/backtest"
	"github.com/rustyeddy/backtest/pricing"
)

// BuyAndHold enters once with the configured notional on the first interval
// and never exits. The position stays open in the ledger, so the run's
// total PnL is entirely unrealized.
type BuyAndHold struct {
	Value float64

	entered bool
}

func (s *BuyAndHold) OnCandle(history []pricing.Candle, book *backtest.PositionsBook) ([]backtest.Order, error) {
	_ = history
	_ = book
	if s.entered {
		return nil, nil
	}
	s.entered = true
	return []backtest.Order{backtest.EnterValue(s.Value)}, nil
}
