package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents a complete backtest run configuration.
type Config struct {
	Run      RunConfig      `json:"run" yaml:"run"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Stats    StatsConfig    `json:"stats" yaml:"stats"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// RunConfig describes the dataset and account for a run.
type RunConfig struct {
	Data           string  `json:"data" yaml:"data"` // candle CSV path
	StartingEquity float64 `json:"starting_equity" yaml:"starting_equity"`
}

// StrategyConfig names the strategy and its parameters.
type StrategyConfig struct {
	Name  string  `json:"name" yaml:"name"`
	Fast  int     `json:"fast,omitempty" yaml:"fast,omitempty"`
	Slow  int     `json:"slow,omitempty" yaml:"slow,omitempty"`
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// StatsConfig tunes reporting.
type StatsConfig struct {
	PeriodsPerYear float64 `json:"periods_per_year" yaml:"periods_per_year"`
}

// JournalConfig selects the run persistence backend.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	PositionsFile string `json:"positions_file,omitempty" yaml:"positions_file,omitempty"`
	PnLFile       string `json:"pnl_file,omitempty" yaml:"pnl_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Run.Data == "" {
		return fmt.Errorf("run.data is required")
	}
	if c.Run.StartingEquity <= 0 {
		return fmt.Errorf("run.starting_equity must be positive")
	}
	if c.Strategy.Name == "" {
		return fmt.Errorf("strategy.name is required")
	}
	if c.Stats.PeriodsPerYear <= 0 {
		return fmt.Errorf("stats.periods_per_year must be positive")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.PositionsFile == "" || c.Journal.PnLFile == "" {
			return fmt.Errorf("journal positions_file and pnl_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Data:           "./candles.csv",
			StartingEquity: 100_000,
		},
		Strategy: StrategyConfig{
			Name:  "sma-cross",
			Fast:  20,
			Slow:  50,
			Value: 10_000,
		},
		Stats: StatsConfig{
			PeriodsPerYear: 252,
		},
		Journal: JournalConfig{
			Type:   "none",
			DBPath: "./backtest.sqlite",
		},
	}
}
