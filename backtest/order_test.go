package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderValidate(t *testing.T) {
	t.Parallel()

	qty := 10.0
	val := 1000.0

	tests := []struct {
		name    string
		order   Order
		wantErr error
	}{
		{
			name:  "enter_with_quantity",
			order: EnterQuantity(10),
		},
		{
			name:  "enter_with_value",
			order: EnterValue(-1000),
		},
		{
			name:  "exit_with_id",
			order: ExitPosition("01ABC"),
		},
		{
			name:  "limit_enter",
			order: EnterQuantity(10).Limit(99.5),
		},
		{
			name:    "enter_with_both",
			order:   Order{Action: Enter, Quantity: &qty, Value: &val},
			wantErr: ErrMalformedOrder,
		},
		{
			name:    "enter_with_neither",
			order:   Order{Action: Enter},
			wantErr: ErrMalformedOrder,
		},
		{
			name:    "exit_without_id",
			order:   Order{Action: Exit},
			wantErr: ErrMalformedOrder,
		},
		{
			name:    "unknown_action",
			order:   Order{Action: Action(42), Quantity: &qty},
			wantErr: ErrMalformedOrder,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.order.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderLimitCopies(t *testing.T) {
	t.Parallel()

	market := EnterQuantity(5)
	limit := market.Limit(101.25)

	assert.False(t, market.isLimit())
	require.True(t, limit.isLimit())
	assert.Equal(t, 101.25, *limit.Price)
}
