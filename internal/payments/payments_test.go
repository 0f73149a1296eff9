package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconfiguredGatewayFailsFast(t *testing.T) {
	t.Parallel()

	g := NewGateway("")
	require.False(t, g.Configured())

	ctx := context.Background()

	_, err := g.CreateIntent(ctx, 25, 1, "user123", "user@example.com")
	assert.ErrorIs(t, err, ErrGatewayUnconfigured)

	_, err = g.Verify(ctx, "pi_123")
	assert.ErrorIs(t, err, ErrGatewayUnconfigured)

	_, err = g.Fetch(ctx, "pi_123")
	assert.ErrorIs(t, err, ErrGatewayUnconfigured)

	_, err = g.RefundIntent(ctx, "pi_123", nil)
	assert.ErrorIs(t, err, ErrGatewayUnconfigured)
}

func TestConfiguredFlag(t *testing.T) {
	t.Parallel()

	assert.True(t, NewGateway("sk_test_123").Configured())
	assert.False(t, NewGateway("").Configured())
}

func TestMinorUnitConversion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		major float64
		minor int64
	}{
		{"Whole amount", 25, 2500},
		{"Cents", 19.99, 1999},
		{"Rounding up", 10.005, 1001},
		{"Zero", 0, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.minor, toMinorUnits(tc.major))
		})
	}

	assert.Equal(t, 19.99, fromMinorUnits(1999))
}
