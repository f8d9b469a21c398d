package calculator

import (
	"testing"

	"rigvalue/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_DeriveMetrics(t *testing.T) {
	t.Run("dollar per mark", func(t *testing.T) {
		out := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice: decimal.NewFromInt(100),
			Marks: map[domain.BenchmarkDimension]float64{
				domain.DimensionSingleThread: 2000,
				domain.DimensionMultiThread:  8000,
			},
			CohortDollarPerMark: []float64{0.05},
		})

		require.True(t, out.DollarPerMark[domain.DimensionSingleThread].Equal(decimal.NewFromFloat(0.05)),
			"got %s", out.DollarPerMark[domain.DimensionSingleThread])
		require.True(t, out.DollarPerMark[domain.DimensionMultiThread].Equal(decimal.NewFromFloat(0.0125)),
			"got %s", out.DollarPerMark[domain.DimensionMultiThread])
	})

	t.Run("non-positive marks are omitted, not zero-divided", func(t *testing.T) {
		out := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice: decimal.NewFromInt(100),
			Marks: map[domain.BenchmarkDimension]float64{
				domain.DimensionSingleThread: 0,
				domain.DimensionMultiThread:  -5,
			},
		})

		require.Empty(t, out.DollarPerMark)
		require.Equal(t, domain.ValueRating(""), out.Rating)
	})

	t.Run("two listings sharing a cpu rank by dollar per mark", func(t *testing.T) {
		marks := map[domain.BenchmarkDimension]float64{
			domain.DimensionSingleThread: 2000,
		}
		cohort := []float64{0.05, 0.10} // listing A at $100, listing B at $200

		a := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice:       decimal.NewFromInt(100),
			Marks:               marks,
			CohortDollarPerMark: cohort,
		})
		b := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice:       decimal.NewFromInt(200),
			Marks:               marks,
			CohortDollarPerMark: cohort,
		})

		require.True(t, a.DollarPerMark[domain.DimensionSingleThread].Equal(decimal.NewFromFloat(0.05)))
		require.True(t, b.DollarPerMark[domain.DimensionSingleThread].Equal(decimal.NewFromFloat(0.10)))

		// A must rank strictly better than B
		require.Equal(t, domain.RatingExcellent, a.Rating)
		require.Equal(t, domain.RatingFair, b.Rating)
	})

	t.Run("quartile boundary ties resolve toward the better bucket", func(t *testing.T) {
		cohort := []float64{0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.10, 0.11}
		// Q2 (median) = 0.075; a listing exactly at a breakpoint takes the
		// better bucket
		out := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice: decimal.NewFromInt(150),
			Marks: map[domain.BenchmarkDimension]float64{
				domain.DimensionSingleThread: 2000, // 150/2000 = 0.075
			},
			CohortDollarPerMark: cohort,
		})

		require.Equal(t, domain.RatingGood, out.Rating)
	})

	t.Run("cohort of one is excellent", func(t *testing.T) {
		out := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice: decimal.NewFromInt(100),
			Marks: map[domain.BenchmarkDimension]float64{
				domain.DimensionSingleThread: 2000,
			},
			CohortDollarPerMark: []float64{0.05},
		})

		require.Equal(t, domain.RatingExcellent, out.Rating)
	})

	t.Run("composite mark uses dimension weights", func(t *testing.T) {
		out := DeriveMetrics(DeriveMetricsInput{
			AdjustedPrice: decimal.NewFromInt(100),
			Marks: map[domain.BenchmarkDimension]float64{
				domain.DimensionSingleThread: 2000,
				domain.DimensionMultiThread:  8000,
			},
			DimensionWeights: map[domain.BenchmarkDimension]decimal.Decimal{
				domain.DimensionSingleThread: decimal.NewFromFloat(0.75),
				domain.DimensionMultiThread:  decimal.NewFromFloat(0.25),
			},
			CohortDollarPerMark: []float64{0.05},
		})

		// composite = 0.75*2000 + 0.25*8000 = 3500; 100/3500
		require.NotNil(t, out.DollarPerComposite)
		expected := decimal.NewFromInt(100).Div(decimal.NewFromInt(3500))
		require.True(t, out.DollarPerComposite.Equal(expected), "got %s", out.DollarPerComposite)
	})
}
