package strategies

import (
	"fmt"

	"github.com/rustyeddy/backtest/backtest"
	"github.com/rustyeddy/backtest/indicators"
	"github.com/rustyeddy/backtest/pricing"
)

// SMACrossConfig parameterizes the moving-average crossover strategy.
type SMACrossConfig struct {
	Fast  int     // fast SMA period
	Slow  int     // slow SMA period
	Value float64 // notional per entry, unsigned
}

// SMACross goes long when the fast SMA crosses above the slow SMA and short
// when it crosses below, flattening opposite exposure first. One instance is
// good for one run; it keeps streaming indicator state across calls.
type SMACross struct {
	cfg  SMACrossConfig
	fast *indicators.SimpleMA
	slow *indicators.SimpleMA

	havePrev bool
	prevDiff float64
}

func NewSMACross(cfg SMACrossConfig) *SMACross {
	if cfg.Fast <= 0 {
		cfg.Fast = 20
	}
	if cfg.Slow <= 0 {
		cfg.Slow = 50
	}
	if cfg.Value <= 0 {
		cfg.Value = 10_000
	}
	return &SMACross{
		cfg:  cfg,
		fast: indicators.NewSMA(cfg.Fast),
		slow: indicators.NewSMA(cfg.Slow),
	}
}

func (s *SMACross) Name() string {
	return fmt.Sprintf("sma-cross(%d,%d)", s.cfg.Fast, s.cfg.Slow)
}

func (s *SMACross) OnCandle(history []pricing.Candle, book *backtest.PositionsBook) ([]backtest.Order, error) {
	// Each call delivers exactly one new candle at the end of history.
	latest := history[len(history)-1]
	s.fast.Update(latest)
	s.slow.Update(latest)

	if !s.fast.Ready() || !s.slow.Ready() {
		return nil, nil
	}

	diff := s.fast.Value() - s.slow.Value()
	defer func() {
		s.prevDiff = diff
		s.havePrev = true
	}()

	if !s.havePrev {
		return nil, nil
	}

	var orders []backtest.Order
	switch {
	case s.prevDiff <= 0 && diff > 0: // golden cross
		orders = append(orders, book.CloseWhere(backtest.Position.IsShort)...)
		orders = append(orders, backtest.EnterValue(s.cfg.Value))

	case s.prevDiff >= 0 && diff < 0: // death cross
		orders = append(orders, book.CloseWhere(backtest.Position.IsLong)...)
		orders = append(orders, backtest.EnterValue(-s.cfg.Value))
	}
	return orders, nil
}
