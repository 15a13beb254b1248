package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/backtest/pricing"
)

func candles(closes ...float64) []pricing.Candle {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]pricing.Candle, len(closes))
	for i, c := range closes {
		out[i] = pricing.Candle{Time: start.AddDate(0, 0, i), Close: c}
	}
	return out
}

func TestSMA(t *testing.T) {
	t.Parallel()

	v, err := SMA(candles(1, 2, 3, 4, 5), 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-9)
}

func TestSMAErrors(t *testing.T) {
	t.Parallel()

	_, err := SMA(candles(1, 2), 3)
	assert.Error(t, err)

	_, err = SMA(candles(1, 2, 3), 0)
	assert.Error(t, err)
}

func TestEMA(t *testing.T) {
	t.Parallel()

	// Seed SMA(3) of [2,4,6] = 4; multiplier 0.5.
	// next 8:  (8-4)*0.5+4 = 6
	// next 10: (10-6)*0.5+6 = 8
	v, err := EMA(candles(2, 4, 6, 8, 10), 3)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-9)
}

func TestStreamingSMAMatchesBatch(t *testing.T) {
	t.Parallel()

	series := candles(10, 11, 13, 12, 14, 15, 13)
	sma := NewSMA(3)

	for i, c := range series {
		sma.Update(c)
		if i+1 < sma.Warmup() {
			assert.False(t, sma.Ready())
			continue
		}
		require.True(t, sma.Ready())
		batch, err := SMA(series[:i+1], 3)
		require.NoError(t, err)
		assert.InDelta(t, batch, sma.Value(), 1e-9, "bar %d", i)
	}
}

func TestStreamingEMAMatchesBatch(t *testing.T) {
	t.Parallel()

	series := candles(2, 4, 6, 8, 10, 9, 7)
	ema := NewEMA(3)

	for i, c := range series {
		ema.Update(c)
		if !ema.Ready() {
			continue
		}
		batch, err := EMA(series[:i+1], 3)
		require.NoError(t, err)
		assert.InDelta(t, batch, ema.Value(), 1e-9, "bar %d", i)
	}
}

func TestStreamingReset(t *testing.T) {
	t.Parallel()

	sma := NewSMA(2)
	sma.Update(pricing.Candle{Close: 10})
	sma.Update(pricing.Candle{Close: 20})
	require.True(t, sma.Ready())

	sma.Reset()
	assert.False(t, sma.Ready())

	ema := NewEMA(2)
	ema.Update(pricing.Candle{Close: 10})
	ema.Update(pricing.Candle{Close: 20})
	require.True(t, ema.Ready())

	ema.Reset()
	assert.False(t, ema.Ready())
}

func TestIndicatorNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SMA(20)", NewSMA(20).Name())
	assert.Equal(t, "EMA(50)", NewEMA(50).Name())
}
