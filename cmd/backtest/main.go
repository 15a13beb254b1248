package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Simulate trading strategies against historical candle data",
	Long: `Backtest replays a strategy over historical OHLCV candles and reports
a per-interval PnL ledger, an equity curve and summary statistics.

Built-in strategies:
  - noop:      does nothing (baseline)
  - buy-hold:  enters once and holds to the end
  - sma-cross: moving-average crossover, long above / short below

Example:
  backtest run -d data/spy_daily.csv -s sma-cross --fast 20 --slow 50`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
