package backtest

import (
	"fmt"
	"io"
	"time"
)

// WriteReport prints a human-readable summary of the stats, one metric per
// line. Not-applicable metrics print as "n/a" so they can never be mistaken
// for zero.
func (s Stats) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start:           %s\n", s.Start.Format(time.RFC3339))
	fmt.Fprintf(w, "End:             %s\n", s.End.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:        %s\n", s.Duration)
	fmt.Fprintf(w, "Exposure:        %d intervals (%s%%)\n", s.ExposureIntervals, fv(s.ExposurePct))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Equity")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Starting Equity: %s\n", fv(s.StartingEquity))
	fmt.Fprintf(w, "Final Equity:    %s\n", fv(s.FinalEquity))
	fmt.Fprintf(w, "Peak Equity:     %s\n", fv(s.PeakEquity))
	fmt.Fprintf(w, "Total PnL:       %s (%s%%)\n", fv(s.TotalPnL), fv(s.TotalPnLPct))
	fmt.Fprintf(w, "Realized PnL:    %s\n", fv(s.RealizedPnL))
	fmt.Fprintf(w, "Unrealized PnL:  %s\n", fv(s.UnrealizedPnL))
	fmt.Fprintf(w, "Buy & Hold:      %s (%s%%)\n", fv(s.BuyAndHoldPnL), fv(s.BuyAndHoldPnLPct))
	fmt.Fprintf(w, "Max Drawdown:    %s (%s%%)\n", fv(s.MaxDrawdown), fv(s.MaxDrawdownPct))
	fmt.Fprintf(w, "Sharpe Ratio:    %s\n", fv(s.SharpeRatio))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Closed Trades:   %d\n", s.Trades)
	fmt.Fprintf(w, "Open Positions:  %d\n", s.OpenPositions)
	fmt.Fprintf(w, "Win Rate:        %s\n", fv(s.WinRate))
	fmt.Fprintf(w, "Avg Win:         %s\n", fv(s.AvgWin))
	fmt.Fprintf(w, "Avg Loss:        %s\n", fv(s.AvgLoss))
	fmt.Fprintf(w, "Best Trade:      %s\n", fv(s.BestTrade))
	fmt.Fprintf(w, "Worst Trade:     %s\n", fv(s.WorstTrade))
	fmt.Fprintf(w, "Profit Factor:   %s\n", fv(s.ProfitFactor))
	fmt.Fprintf(w, "Expectancy:      %s\n", fv(s.Expectancy))
	fmt.Fprintf(w, "Max Duration:    %s\n", s.MaxPositionDuration)
	fmt.Fprintf(w, "Avg Duration:    %s\n", s.AvgPositionDuration)
}

func fv(v float64) string {
	if IsNA(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
