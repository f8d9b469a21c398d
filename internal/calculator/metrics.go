package calculator

import (
	"rigvalue/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type DeriveMetricsInput struct {
	AdjustedPrice    decimal.Decimal
	Marks            map[domain.BenchmarkDimension]float64
	DimensionWeights map[domain.BenchmarkDimension]decimal.Decimal

	// CohortDollarPerMark is the dollar-per-mark distribution at the
	// primary dimension across all currently-valid listings sharing the
	// component, including this listing.
	CohortDollarPerMark []float64
}

// DeriveMetrics computes dollar-per-benchmark-mark metrics from the
// adjusted price and buckets the listing's primary-dimension value against
// its cohort. Dimensions without a positive mark are omitted rather than
// zero-divided.
func DeriveMetrics(in DeriveMetricsInput) domain.DerivedMetrics {
	out := domain.DerivedMetrics{
		DollarPerMark: map[domain.BenchmarkDimension]decimal.Decimal{},
	}

	for dim, mark := range in.Marks {
		if mark <= 0 {
			continue
		}
		out.DollarPerMark[dim] = in.AdjustedPrice.Div(decimal.NewFromFloat(mark))
	}

	if composite := compositeMark(in.Marks, in.DimensionWeights); composite.IsPositive() {
		perComposite := in.AdjustedPrice.Div(composite)
		out.DollarPerComposite = &perComposite
	}

	own, ok := out.DollarPerMark[domain.PrimaryDimension]
	if !ok {
		return out
	}
	out.Rating = rateAgainstCohort(own.InexactFloat64(), in.CohortDollarPerMark)

	return out
}

// compositeMark is the dimension-weighted sum of the listing's marks,
// covering only dimensions that carry both a weight and a mark.
func compositeMark(
	marks map[domain.BenchmarkDimension]float64,
	weights map[domain.BenchmarkDimension]decimal.Decimal,
) decimal.Decimal {
	composite := decimal.Zero
	for dim, weight := range weights {
		mark, ok := marks[dim]
		if !ok || mark <= 0 {
			continue
		}
		composite = composite.Add(weight.Mul(decimal.NewFromFloat(mark)))
	}
	return composite
}

// rateAgainstCohort buckets the value by quartile: cheapest quartile per
// mark is excellent, then good, fair, poor. Boundary ties resolve toward
// the better bucket.
func rateAgainstCohort(own float64, cohort []float64) domain.ValueRating {
	if len(cohort) <= 1 {
		// a cohort of one is trivially the cheapest per mark
		return domain.RatingExcellent
	}

	quartiles, err := stats.Quartile(cohort)
	if err != nil {
		return domain.RatingExcellent
	}

	switch {
	case own <= quartiles.Q1:
		return domain.RatingExcellent
	case own <= quartiles.Q2:
		return domain.RatingGood
	case own <= quartiles.Q3:
		return domain.RatingFair
	default:
		return domain.RatingPoor
	}
}
