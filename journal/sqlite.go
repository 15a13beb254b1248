package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, strategy, dataset, start_time, end_time, starting_equity, final_equity, total_pnl, trades, wins, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Strategy, r.Dataset, r.Start, r.End,
		r.StartingEquity, r.FinalEquity, r.TotalPnL, r.Trades, r.Wins, r.Losses,
	)
	return err
}

func (j *SQLiteJournal) RecordPosition(p PositionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO positions
		(run_id, position_id, instrument, quantity, entry_time, entry_price, exit_time, exit_price, realized_pl, open)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.RunID, p.PositionID, p.Instrument, p.Quantity,
		p.EntryTime, p.EntryPrice, p.ExitTime, p.ExitPrice, p.RealizedPL, p.Open,
	)
	return err
}

func (j *SQLiteJournal) RecordPnL(r PnLRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO pnl
		(run_id, time, cash, equity, total_pnl)
		VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.Time, r.Cash, r.Equity, r.TotalPnL,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
