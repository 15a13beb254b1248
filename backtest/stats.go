package backtest

import (
	"math"
	"time"

	"github.com/rustyeddy/backtest/pricing"
)

// Stats summarizes a completed run. It is a pure function of the PnL table
// and the ledger; computing it mutates nothing.
//
// Ratio and percentage metrics that have no defined value (zero denominator,
// too few observations, unconstrained starting equity) are NaN; check with
// IsNA. Trade statistics and durations cover closed positions only; exposure
// still open at the last bar shows up in OpenPositions and UnrealizedPnL.
type Stats struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration

	StartingEquity float64
	FinalEquity    float64
	PeakEquity     float64

	TotalPnL      float64 // mark-to-market inclusive
	TotalPnLPct   float64
	RealizedPnL   float64 // closed positions only
	UnrealizedPnL float64 // open positions marked at the final close

	BuyAndHoldPnL    float64
	BuyAndHoldPnLPct float64

	ExposureIntervals int
	ExposurePct       float64

	MaxDrawdown    float64
	MaxDrawdownPct float64

	SharpeRatio float64

	Trades        int // closed positions
	OpenPositions int
	WinRate       float64
	AvgWin        float64
	AvgLoss       float64
	BestTrade     float64
	WorstTrade    float64
	ProfitFactor  float64
	Expectancy    float64

	MaxPositionDuration time.Duration
	AvgPositionDuration time.Duration
}

// IsNA reports whether a metric value means "not applicable".
func IsNA(v float64) bool { return math.IsNaN(v) }

var na = math.NaN()

func computeStats(data []pricing.Candle, ledger []Position, pnl *PnLTable, startingEquity, periodsPerYear float64) Stats {
	n := pnl.Len()
	last := n - 1

	s := Stats{
		Start:    pnl.Times[0],
		End:      pnl.Times[last],
		Duration: pnl.Times[last].Sub(pnl.Times[0]),

		StartingEquity: startingEquity,
		FinalEquity:    pnl.Equity[last],
		TotalPnL:       pnl.TotalPnL[last],
	}

	peak := pnl.Equity[0]
	for _, e := range pnl.Equity {
		if e > peak {
			peak = e
		}
	}
	s.PeakEquity = peak

	hasBase := startingEquity > 0 && !math.IsInf(startingEquity, 1)

	s.TotalPnLPct = na
	if hasBase {
		s.TotalPnLPct = s.TotalPnL / startingEquity * 100
	}

	computeBuyAndHold(&s, data, hasBase)
	computeExposure(&s, data, ledger, n)
	computeDrawdown(&s, pnl)
	computeSharpe(&s, pnl, periodsPerYear)
	computeTradeStats(&s, ledger, data[last].Close)

	return s
}

// computeBuyAndHold prices the naive alternative: buy at the very first open,
// hold to the very last close. Computed from the raw price series alone.
func computeBuyAndHold(s *Stats, data []pricing.Candle, hasBase bool) {
	s.BuyAndHoldPnL = na
	s.BuyAndHoldPnLPct = na

	first := data[0].Open
	if first == 0 {
		return
	}
	change := data[len(data)-1].Close/first - 1

	s.BuyAndHoldPnLPct = change * 100
	if hasBase {
		s.BuyAndHoldPnL = change * s.StartingEquity
	}
}

// computeExposure counts the intervals during which at least one position
// was open.
func computeExposure(s *Stats, data []pricing.Candle, ledger []Position, n int) {
	idx := make(map[int64]int, n)
	for i, c := range data {
		idx[c.Time.UnixNano()] = i
	}

	exposed := make([]bool, n)
	for _, p := range ledger {
		from := idx[p.EntryTime.UnixNano()]
		to := n
		if !p.Open {
			to = idx[p.ExitTime.UnixNano()]
		}
		for i := from; i < to; i++ {
			exposed[i] = true
		}
	}

	for _, e := range exposed {
		if e {
			s.ExposureIntervals++
		}
	}
	s.ExposurePct = float64(s.ExposureIntervals) / float64(n) * 100
}

// computeDrawdown finds the deepest fall of the equity curve below its
// running peak. The percentage is relative to the peak at that point, so a
// later recovery never shrinks it.
func computeDrawdown(s *Stats, pnl *PnLTable) {
	s.MaxDrawdownPct = na

	peak := pnl.Equity[0]
	for _, e := range pnl.Equity {
		if e > peak {
			peak = e
		}
		dd := peak - e
		if dd > s.MaxDrawdown {
			s.MaxDrawdown = dd
			if peak > 0 {
				s.MaxDrawdownPct = dd / peak * 100
			} else {
				s.MaxDrawdownPct = na
			}
		}
	}
}

// computeSharpe annualizes mean/stdev of the per-interval equity returns.
// Not applicable with fewer than 2 observations or a flat return series.
func computeSharpe(s *Stats, pnl *PnLTable, periodsPerYear float64) {
	s.SharpeRatio = na

	var returns []float64
	for i := 1; i < pnl.Len(); i++ {
		prev := pnl.Equity[i-1]
		if prev == 0 {
			continue
		}
		r := pnl.Equity[i]/prev - 1
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		returns = append(returns, r)
	}
	if len(returns) < 2 {
		return
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)

	std := math.Sqrt(variance)
	if std == 0 {
		return
	}
	s.SharpeRatio = mean / std * math.Sqrt(periodsPerYear)
}

func computeTradeStats(s *Stats, ledger []Position, finalClose float64) {
	s.WinRate = na
	s.ProfitFactor = na
	s.Expectancy = na

	var nWins, nLosses int
	var sumWin, sumLoss float64
	var sumDur, maxDur time.Duration

	best, worst := math.Inf(-1), math.Inf(1)

	for _, p := range ledger {
		if p.Open {
			s.OpenPositions++
			s.UnrealizedPnL += p.UnrealizedPL(finalClose)
			continue
		}

		s.Trades++
		pl := p.RealizedPL()
		s.RealizedPnL += pl
		if pl > 0 {
			nWins++
			sumWin += pl
		} else if pl < 0 {
			nLosses++
			sumLoss += pl
		}
		if pl > best {
			best = pl
		}
		if pl < worst {
			worst = pl
		}

		d := p.Duration()
		sumDur += d
		if d > maxDur {
			maxDur = d
		}
	}

	if s.Trades == 0 {
		return
	}

	s.WinRate = float64(nWins) / float64(s.Trades)
	s.BestTrade = best
	s.WorstTrade = worst
	s.MaxPositionDuration = maxDur
	s.AvgPositionDuration = sumDur / time.Duration(s.Trades)

	if nWins > 0 {
		s.AvgWin = sumWin / float64(nWins)
	}
	if nLosses > 0 {
		s.AvgLoss = sumLoss / float64(nLosses)
	}
	if sumLoss != 0 {
		s.ProfitFactor = sumWin / math.Abs(sumLoss)
	}
	s.Expectancy = s.WinRate*s.AvgWin + (1-s.WinRate)*s.AvgLoss
}
