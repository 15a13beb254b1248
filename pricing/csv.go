package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReadCSV reads candle rows:
//
//	time,open,high,low,close,volume
//	time,instrument,open,high,low,close,volume
//
// where time is RFC3339 or RFC3339Nano. A header row ("time,...") is
// allowed. Empty/short rows are skipped. Rows are returned in file order;
// ordering is validated by the engine, not here.
func ReadCSV(r io.Reader) ([]Candle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var candles []Candle
	sawFirst := false

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return candles, nil
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !sawFirst {
			sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}

		c, ok, err := parseCandleRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		candles = append(candles, c)
	}
}

// LoadCSV reads candles from a file on disk.
func LoadCSV(path string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	candles, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read candles %s: %w", path, err)
	}
	return candles, nil
}

func parseCandleRow(row []string) (Candle, bool, error) {
	// Need at least: time,open,high,low,close,volume
	if len(row) < 6 {
		return Candle{}, false, nil
	}

	ts := strings.TrimSpace(row[0])
	if ts == "" {
		return Candle{}, false, nil
	}
	// Accept RFC3339 or RFC3339Nano.
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339Nano, ts)
		if err2 != nil {
			return Candle{}, false, fmt.Errorf("bad time %q: %w", ts, err)
		}
		t = t2
	}

	c := Candle{Time: t}
	fields := row[1:]
	if len(row) >= 7 {
		// Instrument column present.
		c.Instrument = strings.TrimSpace(row[1])
		fields = row[2:]
	}

	names := []string{"open", "high", "low", "close", "volume"}
	vals := []*float64{&c.Open, &c.High, &c.Low, &c.Close, &c.Volume}
	for i, name := range names {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return Candle{}, false, fmt.Errorf("bad %s %q: %w", name, fields[i], err)
		}
		*vals[i] = v
	}

	return c, true, nil
}
