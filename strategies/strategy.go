// Package strategies holds reference implementations of backtest.Strategy
// and a small name registry for the CLI.
package strategies

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/backtest/backtest"
)

var registry = make(map[string]backtest.Strategy)

// Register makes a strategy available under a name.
func Register(name string, strat backtest.Strategy) {
	registry[name] = strat
}

// Get returns a registered strategy, or nil.
func Get(name string) backtest.Strategy {
	return registry[name]
}

// ByName builds one of the built-in strategies. Strategies carry per-run
// state, so the result is good for exactly one Backtest.
func ByName(name string, value float64, fast, slow int) (backtest.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "noop", "none":
		return NoopStrategy{}, nil

	case "buy-hold", "buyhold":
		return &BuyAndHold{Value: value}, nil

	case "sma-cross", "smacross":
		return NewSMACross(SMACrossConfig{
			Fast:  fast,
			Slow:  slow,
			Value: value,
		}), nil

	default:
		if s := Get(name); s != nil {
			return s, nil
		}
		return nil, fmt.Errorf("unknown strategy %q (supported: noop, buy-hold, sma-cross)", name)
	}
}
