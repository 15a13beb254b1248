package backtest

import (
	"fmt"
	"math"
	"time"

	"github.com/rustyeddy/backtest/internal/id"
	"github.com/rustyeddy/backtest/pricing"
)

// applyOrders consumes one interval's orders against the next bar. All
// orders are validated before anything fills, so a malformed order never
// leaves a half-applied interval behind. Exits run before enters so capital
// freed by a close is available to new positions within the same interval;
// relative order within each group is preserved.
func (bt *Backtest) applyOrders(orders []Order, next pricing.Candle) error {
	for _, o := range orders {
		if err := o.validate(); err != nil {
			return err
		}
	}

	sorted := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Action == Exit {
			sorted = append(sorted, o)
		}
	}
	for _, o := range orders {
		if o.Action == Enter {
			sorted = append(sorted, o)
		}
	}

	for _, o := range sorted {
		price, ok := fillPrice(o, next)
		if !ok {
			// Limit never crossed the bar: dropped, not retried, not an error.
			continue
		}

		var err error
		if o.Action == Exit {
			err = bt.fillExit(o, price, next.Time)
		} else {
			err = bt.fillEnter(o, price, next)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// fillPrice resolves the execution price against the next bar. Market orders
// take the bar's open. A limit order fills at exactly its limit price if the
// bar's range covers it.
func fillPrice(o Order, next pricing.Candle) (float64, bool) {
	if !o.isLimit() {
		return next.Open, true
	}
	if *o.Price < next.Low || *o.Price > next.High {
		return 0, false
	}
	return *o.Price, true
}

func (bt *Backtest) fillExit(o Order, price float64, at time.Time) error {
	var pos *Position
	for _, p := range bt.ledger {
		if p.ID == o.PositionID && p.Open {
			pos = p
			break
		}
	}
	if pos == nil {
		return fmt.Errorf("%w: exit %q: no open position with that id", ErrUnknownPosition, o.PositionID)
	}

	pos.ExitTime = at
	pos.ExitPrice = price
	pos.Open = false

	// Selling a long adds cash; covering a short (negative quantity) costs it.
	bt.cash += pos.Quantity * price
	return nil
}

func (bt *Backtest) fillEnter(o Order, price float64, next pricing.Candle) error {
	var qty float64
	if o.Value != nil {
		qty = *o.Value / price
	} else {
		qty = *o.Quantity
	}
	if qty == 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return fmt.Errorf("%w: enter resolves to quantity %v at price %v", ErrMalformedOrder, qty, price)
	}

	cost := qty * price
	if !bt.unconstrained() {
		required := math.Abs(cost)
		if bp := bt.buyingPower(price); required > bp {
			return fmt.Errorf("%w: order needs %.2f buying power, have %.2f at %s",
				ErrInsufficientCapital, required, bp, next.Time.Format(time.RFC3339))
		}
	}

	bt.ledger = append(bt.ledger, &Position{
		ID:         id.New(),
		Instrument: next.Instrument,
		Quantity:   qty,
		EntryTime:  next.Time,
		EntryPrice: price,
		Open:       true,
	})
	bt.cash -= cost
	return nil
}

// buyingPower is cash less the exposure needed to cover open shorts, marked
// at the given price. No margin or leverage is modeled.
func (bt *Backtest) buyingPower(mark float64) float64 {
	bp := bt.cash
	for _, p := range bt.ledger {
		if p.Open && p.Quantity < 0 {
			bp -= math.Abs(p.Quantity) * mark
		}
	}
	return bp
}
