package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositionRealizedPL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pos      Position
		expected float64
	}{
		{
			name:     "long_profit",
			pos:      Position{Quantity: 1000, EntryPrice: 1.2000, ExitPrice: 1.2050},
			expected: 5.0,
		},
		{
			name:     "long_loss",
			pos:      Position{Quantity: 1000, EntryPrice: 1.2000, ExitPrice: 1.1900},
			expected: -10.0,
		},
		{
			name:     "short_profit",
			pos:      Position{Quantity: -1000, EntryPrice: 1.2000, ExitPrice: 1.1900},
			expected: 10.0,
		},
		{
			name:     "short_loss",
			pos:      Position{Quantity: -1000, EntryPrice: 1.2000, ExitPrice: 1.2050},
			expected: -5.0,
		},
		{
			name:     "still_open",
			pos:      Position{Quantity: 1000, EntryPrice: 1.2000, Open: true},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, tt.pos.RealizedPL(), 1e-9)
		})
	}
}

func TestPositionDirection(t *testing.T) {
	t.Parallel()

	long := Position{Quantity: 10}
	short := Position{Quantity: -0.5}

	assert.True(t, long.IsLong())
	assert.False(t, long.IsShort())
	assert.True(t, short.IsShort())
	assert.False(t, short.IsLong())
}

func TestPositionUnrealizedPL(t *testing.T) {
	t.Parallel()

	long := Position{Quantity: 20, EntryPrice: 50, Open: true}
	assert.InDelta(t, 100.0, long.UnrealizedPL(55), 1e-9)

	short := Position{Quantity: -20, EntryPrice: 50, Open: true}
	assert.InDelta(t, -100.0, short.UnrealizedPL(55), 1e-9)
}

func TestPositionDuration(t *testing.T) {
	t.Parallel()

	entry := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := Position{EntryTime: entry, ExitTime: entry.AddDate(0, 0, 3)}
	assert.Equal(t, 72*time.Hour, p.Duration())
}
