package backtest

import "fmt"

// Action distinguishes opening new exposure from closing an existing position.
type Action int

const (
	Enter Action = iota
	Exit
)

func (a Action) String() string {
	switch a {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Order is a strategy's intent for the coming interval. Orders are transient:
// produced by OnCandle, consumed against the next bar, never carried forward.
//
// For Enter, exactly one of Quantity or Value must be set; the sign encodes
// direction for both (a negative value opens a short). For Exit, PositionID
// must name an open position.
//
// A nil Price means market: the fill happens at the next bar's open. A
// non-nil Price is a limit: the order fills at exactly that price if the
// next bar's [low, high] range covers it, and is otherwise dropped.
type Order struct {
	Action     Action
	Quantity   *float64
	Value      *float64
	Price      *float64
	PositionID string
}

// EnterQuantity opens a position of the given signed size.
func EnterQuantity(qty float64) Order {
	return Order{Action: Enter, Quantity: &qty}
}

// EnterValue opens a position worth the given signed notional; the engine
// resolves quantity as value/fill price.
func EnterValue(value float64) Order {
	return Order{Action: Enter, Value: &value}
}

// ExitPosition closes the open position with the given id.
func ExitPosition(positionID string) Order {
	return Order{Action: Exit, PositionID: positionID}
}

// Limit returns a copy of the order with a limit price attached.
func (o Order) Limit(price float64) Order {
	o.Price = &price
	return o
}

func (o Order) isLimit() bool { return o.Price != nil }

// validate enforces order shape before any fill is attempted.
func (o Order) validate() error {
	switch o.Action {
	case Enter:
		if (o.Quantity == nil) == (o.Value == nil) {
			return fmt.Errorf("%w: enter needs exactly one of quantity or value", ErrMalformedOrder)
		}
	case Exit:
		if o.PositionID == "" {
			return fmt.Errorf("%w: exit needs a position id", ErrMalformedOrder)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrMalformedOrder, o.Action)
	}
	return nil
}
