package calculator

import (
	"testing"

	"rigvalue/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeAdjustment(t *testing.T) {
	t.Run("fixed amount", func(t *testing.T) {
		snapshot := newSnapshot(nil, nil)

		amount, applicable := ComputeAdjustment(domain.FixedAmountAction{
			Amount: decimal.NewFromInt(-50),
		}, snapshot)

		require.True(t, applicable)
		require.True(t, amount.Equal(decimal.NewFromInt(-50)))
	})

	t.Run("percent of price", func(t *testing.T) {
		snapshot := newSnapshot(nil, nil) // raw price 500

		amount, applicable := ComputeAdjustment(domain.PercentOfPriceAction{
			Percent: decimal.NewFromInt(-10),
		}, snapshot)

		require.True(t, applicable)
		require.True(t, amount.Equal(decimal.NewFromInt(-50)), "got %s", amount)
	})

	t.Run("benchmark delta formula", func(t *testing.T) {
		snapshot := newSnapshot(nil, map[domain.BenchmarkDimension]float64{
			domain.DimensionSingleThread: 2600,
		})

		// 0.05 * (2600 - 2000) = 30
		amount, applicable := ComputeAdjustment(domain.BenchmarkDeltaAction{
			Dimension:   domain.DimensionSingleThread,
			Coefficient: decimal.NewFromFloat(0.05),
			Baseline:    decimal.NewFromInt(2000),
		}, snapshot)

		require.True(t, applicable)
		require.True(t, amount.Equal(decimal.NewFromInt(30)), "got %s", amount)
	})

	t.Run("formula without the mark is inapplicable, not an error", func(t *testing.T) {
		snapshot := newSnapshot(nil, nil)

		amount, applicable := ComputeAdjustment(domain.BenchmarkDeltaAction{
			Dimension:   domain.Dimension3DGraphics,
			Coefficient: decimal.NewFromFloat(0.01),
			Baseline:    decimal.NewFromInt(5000),
		}, snapshot)

		require.False(t, applicable)
		require.True(t, amount.IsZero())
	})

	t.Run("formula with a non-positive mark is inapplicable", func(t *testing.T) {
		snapshot := newSnapshot(nil, map[domain.BenchmarkDimension]float64{
			domain.DimensionSingleThread: 0,
		})

		_, applicable := ComputeAdjustment(domain.BenchmarkDeltaAction{
			Dimension:   domain.DimensionSingleThread,
			Coefficient: decimal.NewFromFloat(0.05),
			Baseline:    decimal.NewFromInt(2000),
		}, snapshot)

		require.False(t, applicable)
	})
}
