package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/backtest/backtest"
	"github.com/rustyeddy/backtest/internal/id"
)

// RecordBacktest writes a completed run to the journal: one run summary, the
// full ledger and every PnL row. It returns the generated run id.
func RecordBacktest(j Journal, strategy, dataset string, bt *backtest.Backtest) (string, error) {
	pnl := bt.PnL()
	if pnl == nil {
		return "", fmt.Errorf("journal: run did not complete")
	}

	stats, err := bt.Stats()
	if err != nil {
		return "", err
	}

	runID := id.New()

	ledger := bt.Ledger()
	wins, losses := 0, 0
	for _, p := range ledger {
		if p.Open {
			continue
		}
		if pl := p.RealizedPL(); pl > 0 {
			wins++
		} else if pl < 0 {
			losses++
		}
	}

	run := RunRecord{
		RunID:          runID,
		Created:        time.Now().UTC(),
		Strategy:       strategy,
		Dataset:        dataset,
		Start:          stats.Start,
		End:            stats.End,
		StartingEquity: stats.StartingEquity,
		FinalEquity:    stats.FinalEquity,
		TotalPnL:       stats.TotalPnL,
		Trades:         stats.Trades,
		Wins:           wins,
		Losses:         losses,
	}
	if err := j.RecordRun(run); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	for _, p := range ledger {
		rec := PositionRecord{
			RunID:      runID,
			PositionID: p.ID,
			Instrument: p.Instrument,
			Quantity:   p.Quantity,
			EntryTime:  p.EntryTime,
			EntryPrice: p.EntryPrice,
			ExitTime:   p.ExitTime,
			ExitPrice:  p.ExitPrice,
			RealizedPL: p.RealizedPL(),
			Open:       p.Open,
		}
		if err := j.RecordPosition(rec); err != nil {
			return "", fmt.Errorf("record position %s: %w", p.ID, err)
		}
	}

	for i := 0; i < pnl.Len(); i++ {
		rec := PnLRecord{
			RunID:    runID,
			Time:     pnl.Times[i],
			Cash:     pnl.Cash[i],
			Equity:   pnl.Equity[i],
			TotalPnL: pnl.TotalPnL[i],
		}
		if err := j.RecordPnL(rec); err != nil {
			return "", fmt.Errorf("record pnl row %d: %w", i, err)
		}
	}

	return runID, nil
}
