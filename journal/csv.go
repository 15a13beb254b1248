package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	positions *csv.Writer
	pnl       *csv.Writer
	pf, lf    *os.File
}

func NewCSV(positionsPath, pnlPath string) (*CSVJournal, error) {
	pf, err := os.Create(positionsPath)
	if err != nil {
		return nil, err
	}
	lf, err := os.Create(pnlPath)
	if err != nil {
		pf.Close()
		return nil, err
	}

	pw := csv.NewWriter(pf)
	lw := csv.NewWriter(lf)

	if err := pw.Write([]string{"run_id", "position_id", "instrument", "quantity", "entry_time", "entry_price", "exit_time", "exit_price", "realized_pl", "open"}); err != nil {
		return nil, err
	}
	if err := lw.Write([]string{"run_id", "time", "cash", "equity", "total_pnl"}); err != nil {
		return nil, err
	}

	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}
	lw.Flush()
	if err := lw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{pw, lw, pf, lf}, nil
}

// RecordRun is a no-op for the CSV backend; the run summary lives in the
// printed report.
func (j *CSVJournal) RecordRun(RunRecord) error { return nil }

func (j *CSVJournal) RecordPosition(p PositionRecord) error {
	exitTime := ""
	if !p.Open {
		exitTime = p.ExitTime.Format(time.RFC3339)
	}
	err := j.positions.Write([]string{
		p.RunID,
		p.PositionID,
		p.Instrument,
		f(p.Quantity),
		p.EntryTime.Format(time.RFC3339),
		f(p.EntryPrice),
		exitTime,
		f(p.ExitPrice),
		f(p.RealizedPL),
		strconv.FormatBool(p.Open),
	})
	if err != nil {
		return err
	}
	j.positions.Flush()
	return j.positions.Error()
}

func (j *CSVJournal) RecordPnL(r PnLRecord) error {
	err := j.pnl.Write([]string{
		r.RunID,
		r.Time.Format(time.RFC3339),
		f(r.Cash),
		f(r.Equity),
		f(r.TotalPnL),
	})
	if err != nil {
		return err
	}
	j.pnl.Flush()
	return j.pnl.Error()
}

func (j *CSVJournal) Close() error {
	j.positions.Flush()
	if err := j.positions.Error(); err != nil {
		return err
	}
	j.pnl.Flush()
	if err := j.pnl.Error(); err != nil {
		return err
	}

	if err := j.pf.Close(); err != nil {
		return err
	}
	return j.lf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
