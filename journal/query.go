package journal

import "fmt"

// GetRun loads one run summary by id.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`
		SELECT run_id, created, strategy, dataset, start_time, end_time,
		       starting_equity, final_equity, total_pnl, trades, wins, losses
		FROM runs WHERE run_id = ?`, runID)

	var r RunRecord
	err := row.Scan(&r.RunID, &r.Created, &r.Strategy, &r.Dataset, &r.Start, &r.End,
		&r.StartingEquity, &r.FinalEquity, &r.TotalPnL, &r.Trades, &r.Wins, &r.Losses)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %q: %w", runID, err)
	}
	return r, nil
}

// ListPositionsByRun returns the ledger of a run in entry order.
func (j *SQLiteJournal) ListPositionsByRun(runID string) ([]PositionRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, position_id, instrument, quantity, entry_time, entry_price,
		       exit_time, exit_price, realized_pl, open
		FROM positions WHERE run_id = ? ORDER BY position_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list positions %q: %w", runID, err)
	}
	defer rows.Close()

	var out []PositionRecord
	for rows.Next() {
		var p PositionRecord
		if err := rows.Scan(&p.RunID, &p.PositionID, &p.Instrument, &p.Quantity,
			&p.EntryTime, &p.EntryPrice, &p.ExitTime, &p.ExitPrice, &p.RealizedPL, &p.Open); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListPnLByRun returns a run's PnL rows in time order.
func (j *SQLiteJournal) ListPnLByRun(runID string) ([]PnLRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, time, cash, equity, total_pnl
		FROM pnl WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return nil, fmt.Errorf("list pnl %q: %w", runID, err)
	}
	defer rows.Close()

	var out []PnLRecord
	for rows.Next() {
		var r PnLRecord
		if err := rows.Scan(&r.RunID, &r.Time, &r.Cash, &r.Equity, &r.TotalPnL); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
