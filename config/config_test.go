package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.yaml")
	body := `
run:
  data: ./spy.csv
  starting_equity: 50000
strategy:
  name: sma-cross
  fast: 10
  slow: 30
  value: 5000
stats:
  periods_per_year: 252
journal:
  type: sqlite
  db_path: ./runs.sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./spy.csv", cfg.Run.Data)
	assert.InDelta(t, 50_000.0, cfg.Run.StartingEquity, 1e-9)
	assert.Equal(t, 10, cfg.Strategy.Fast)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{"cfg.yaml", "cfg.json"}
	for _, name := range tests {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			want := Default()
			want.Strategy.Name = "buy-hold"

			require.NoError(t, want.SaveToFile(path))
			got, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not config"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing_data", func(c *Config) { c.Run.Data = "" }},
		{"zero_equity", func(c *Config) { c.Run.StartingEquity = 0 }},
		{"missing_strategy", func(c *Config) { c.Strategy.Name = "" }},
		{"zero_periods", func(c *Config) { c.Stats.PeriodsPerYear = 0 }},
		{"bad_journal_type", func(c *Config) { c.Journal.Type = "postgres" }},
		{"csv_without_files", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }},
		{"sqlite_without_path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
