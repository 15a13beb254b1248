package strategies

import (
	"github.com/rustyeddy/backtest/backtest"
	"github.com/rustyeddy/backtest/pricing"
)

// NoopStrategy does nothing. Useful as a baseline: a run with it should end
// with equity exactly at the starting value.
type NoopStrategy struct{}

func (NoopStrategy) OnCandle(history []pricing.Candle, book *backtest.PositionsBook) ([]backtest.Order, error) {
	_ = history
	_ = book
	return nil, nil
}
