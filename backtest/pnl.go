package backtest

import (
	"time"

	"github.com/rustyeddy/backtest/pricing"
)

// PnLTable is the per-interval accounting of a completed run: one row per
// candle with the cash balance, mark-to-market equity and cumulative PnL,
// plus one market-value series per position. Rows satisfy
//
//	Cash[t] + sum of open position notionals at t == Equity[t]
//	Equity[t] == starting equity + TotalPnL[t]
//
// The table is built in a second pass over the finished ledger and is
// immutable once the run completes.
type PnLTable struct {
	Times    []time.Time
	Cash     []float64
	Equity   []float64
	TotalPnL []float64

	// PositionIDs lists the ledger's positions in creation order;
	// PositionValues holds each position's quantity*close series, non-zero
	// from its entry bar up to the bar before its exit (through the last
	// bar if it never closed).
	PositionIDs    []string
	PositionValues map[string][]float64
}

func (t *PnLTable) Len() int { return len(t.Times) }

// OpenNotional is the total open position value at row i.
func (t *PnLTable) OpenNotional(i int) float64 {
	var v float64
	for _, id := range t.PositionIDs {
		v += t.PositionValues[id][i]
	}
	return v
}

// computePnL rebuilds the interval-by-interval accounting from the ledger
// alone. It depends only on each position's entry/exit times and prices, not
// on the loop's side effects, which keeps reporting decoupled from the fill
// path.
func computePnL(data []pricing.Candle, ledger []*Position, base float64) *PnLTable {
	n := len(data)

	t := &PnLTable{
		Times:          make([]time.Time, n),
		Cash:           make([]float64, n),
		Equity:         make([]float64, n),
		TotalPnL:       make([]float64, n),
		PositionValues: make(map[string][]float64, len(ledger)),
	}

	// Fill times always come from the candle series, so every entry/exit
	// timestamp resolves to a bar index.
	idx := make(map[int64]int, n)
	for i, c := range data {
		t.Times[i] = c.Time
		t.Cash[i] = base
		idx[c.Time.UnixNano()] = i
	}

	for _, p := range ledger {
		entryIdx := idx[p.EntryTime.UnixNano()]
		exitIdx := n
		if !p.Open {
			exitIdx = idx[p.ExitTime.UnixNano()]
		}

		values := make([]float64, n)
		for i := entryIdx; i < exitIdx; i++ {
			values[i] = p.Quantity * data[i].Close
		}
		t.PositionIDs = append(t.PositionIDs, p.ID)
		t.PositionValues[p.ID] = values

		// Cash pays the entry value from the entry bar on and receives the
		// exit value from the exit bar on.
		entryValue := p.Quantity * p.EntryPrice
		for i := entryIdx; i < n; i++ {
			t.Cash[i] -= entryValue
		}
		if !p.Open {
			exitValue := p.Quantity * p.ExitPrice
			for i := exitIdx; i < n; i++ {
				t.Cash[i] += exitValue
			}
		}
	}

	for i := 0; i < n; i++ {
		t.Equity[i] = t.Cash[i] + t.OpenNotional(i)
		t.TotalPnL[i] = t.Equity[i] - base
	}

	return t
}
