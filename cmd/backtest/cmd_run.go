package main

import (
	"fmt"
	"os"

	"github.com/rustyeddy/backtest/backtest"
	"github.com/rustyeddy/backtest/config"
	"github.com/rustyeddy/backtest/journal"
	"github.com/rustyeddy/backtest/pricing"
	"github.com/rustyeddy/backtest/strategies"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a backtest over a candle CSV",
	RunE:  runBacktest,
}

var (
	runConfigPath string
	runDataPath   string
	runStrategy   string
	runEquity     float64
	runValue      float64
	runFast       int
	runSlow       int
	runPeriods    float64
	runDBPath     string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON run config (flags override)")
	runCmd.Flags().StringVarP(&runDataPath, "data", "d", "", "path to candle CSV (time,open,high,low,close,volume)")
	runCmd.Flags().StringVarP(&runStrategy, "strategy", "s", "", "strategy name (noop, buy-hold, sma-cross)")
	runCmd.Flags().Float64VarP(&runEquity, "equity", "e", 0, "starting equity")
	runCmd.Flags().Float64VarP(&runValue, "value", "v", 0, "notional per entry (used by some strategies)")
	runCmd.Flags().IntVar(&runFast, "fast", 0, "sma-cross: fast SMA period")
	runCmd.Flags().IntVar(&runSlow, "slow", 0, "sma-cross: slow SMA period")
	runCmd.Flags().Float64Var(&runPeriods, "periods-per-year", 0, "bars per year for Sharpe annualization")
	runCmd.Flags().StringVar(&runDBPath, "db", "", "write the run to this SQLite journal")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override the config file.
	if runDataPath != "" {
		cfg.Run.Data = runDataPath
	}
	if runStrategy != "" {
		cfg.Strategy.Name = runStrategy
	}
	if runEquity > 0 {
		cfg.Run.StartingEquity = runEquity
	}
	if runValue > 0 {
		cfg.Strategy.Value = runValue
	}
	if runFast > 0 {
		cfg.Strategy.Fast = runFast
	}
	if runSlow > 0 {
		cfg.Strategy.Slow = runSlow
	}
	if runPeriods > 0 {
		cfg.Stats.PeriodsPerYear = runPeriods
	}
	if runDBPath != "" {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = runDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	candles, err := pricing.LoadCSV(cfg.Run.Data)
	if err != nil {
		return err
	}

	strat, err := strategies.ByName(cfg.Strategy.Name, cfg.Strategy.Value, cfg.Strategy.Fast, cfg.Strategy.Slow)
	if err != nil {
		return err
	}

	bt, err := backtest.New(candles, strat,
		backtest.WithStartingEquity(cfg.Run.StartingEquity),
		backtest.WithPeriodsPerYear(cfg.Stats.PeriodsPerYear),
	)
	if err != nil {
		return err
	}

	if err := bt.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	stats, err := bt.Stats()
	if err != nil {
		return err
	}
	stats.WriteReport(os.Stdout)

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		runID, err := journal.RecordBacktest(j, cfg.Strategy.Name, cfg.Run.Data, bt)
		if err != nil {
			return err
		}
		fmt.Printf("\nRun ID: %s\n", runID)
	}

	return nil
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "csv":
		return journal.NewCSV(cfg.PositionsFile, cfg.PnLFile)
	default:
		return nil, nil
	}
}
