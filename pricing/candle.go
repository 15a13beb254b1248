package pricing

import "time"

// Candle is one OHLCV bar. Bars are expected to arrive ordered by Time,
// one per interval, no duplicates.
type Candle struct {
	Instrument string // optional but handy
	Time       time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume float64 // optional
}
