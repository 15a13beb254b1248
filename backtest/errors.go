package backtest

import "errors"

// Fatal error kinds. Each aborts Run immediately and none is retried: all
// four indicate a strategy bug or bad input data that would otherwise
// corrupt the accounting invariants. A limit order that simply does not
// cross the next bar's range is a normal outcome, not an error.
var (
	// ErrMalformedOrder: an order's shape is invalid or ambiguous, e.g. an
	// enter with both quantity and value set, or with neither.
	ErrMalformedOrder = errors.New("malformed order")

	// ErrUnknownPosition: an exit references a position id that does not
	// exist or is already closed.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrInsufficientCapital: an enter would breach available buying power.
	ErrInsufficientCapital = errors.New("insufficient capital")

	// ErrInvalidInput: the candle series is not strictly time-ordered or
	// contains non-finite values.
	ErrInvalidInput = errors.New("invalid input")
)
