package backtest

// PositionsBook is the read-only view handed to a strategy each interval:
// the positions open as of the bar being observed, marked at that bar's
// close. The snapshot is taken before any of the current interval's fills,
// so a strategy never observes fills it is about to trigger. Mutating the
// copies it returns has no effect on the ledger.
type PositionsBook struct {
	open []Position
	mark float64
}

func newPositionsBook(ledger []*Position, mark float64) *PositionsBook {
	b := &PositionsBook{mark: mark}
	for _, p := range ledger {
		if p.Open {
			b.open = append(b.open, *p)
		}
	}
	return b
}

// Open returns copies of the currently open positions, oldest first.
func (b *PositionsBook) Open() []Position {
	out := make([]Position, len(b.open))
	copy(out, b.open)
	return out
}

// Get returns a copy of the open position with the given id.
func (b *PositionsBook) Get(id string) (Position, bool) {
	for _, p := range b.open {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}

// IsLong reports whether at least one open position is long.
func (b *PositionsBook) IsLong() bool {
	for _, p := range b.open {
		if p.IsLong() {
			return true
		}
	}
	return false
}

// IsShort reports whether at least one open position is short.
func (b *PositionsBook) IsShort() bool {
	for _, p := range b.open {
		if p.IsShort() {
			return true
		}
	}
	return false
}

func (b *PositionsBook) IsFlat() bool { return len(b.open) == 0 }

// NetQuantity is the signed sum of open quantities.
func (b *PositionsBook) NetQuantity() float64 {
	var net float64
	for _, p := range b.open {
		net += p.Quantity
	}
	return net
}

// MarketValue is the total open notional at the book's mark price.
func (b *PositionsBook) MarketValue() float64 {
	var v float64
	for _, p := range b.open {
		v += p.Quantity * b.mark
	}
	return v
}

// UnrealizedPL marks every open position to the book's mark price.
func (b *PositionsBook) UnrealizedPL() float64 {
	var pl float64
	for _, p := range b.open {
		pl += p.UnrealizedPL(b.mark)
	}
	return pl
}

// CloseAll returns one market exit order per open position, oldest first.
// It is a pure builder: nothing is closed until the orders are returned
// from OnCandle and filled.
func (b *PositionsBook) CloseAll() []Order {
	orders := make([]Order, 0, len(b.open))
	for _, p := range b.open {
		orders = append(orders, ExitPosition(p.ID))
	}
	return orders
}

// CloseWhere returns market exit orders for the open positions the match
// function selects.
func (b *PositionsBook) CloseWhere(match func(Position) bool) []Order {
	var orders []Order
	for _, p := range b.open {
		if match(p) {
			orders = append(orders, ExitPosition(p.ID))
		}
	}
	return orders
}
