package calculator

import (
	"sort"

	"rigvalue/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// AnalyzePriceTargets derives the good/great/fair price ceilings from the
// adjusted prices of the other listings sharing the component (the caller
// excludes the listing under analysis). Returns nil for an empty cohort;
// no data means no target, never a zero-filled one.
//
// Percentiles use linear interpolation between order statistics
// (pos = p/100 * (n-1)), computed in decimal so a fixed cohort always
// reproduces bit-for-bit.
func AnalyzePriceTargets(cohort []decimal.Decimal) *domain.PriceTarget {
	n := len(cohort)
	if n == 0 {
		return nil
	}

	sorted := make([]decimal.Decimal, n)
	copy(sorted, cohort)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	return &domain.PriceTarget{
		Great:      percentileLinear(sorted, 25),
		Good:       percentileLinear(sorted, 50),
		Fair:       percentileLinear(sorted, 75),
		Confidence: domain.ConfidenceForSampleSize(n),
		SampleSize: n,
	}
}

func percentileLinear(sorted []decimal.Decimal, p int64) decimal.Decimal {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := decimal.NewFromInt(p).
		Mul(decimal.NewFromInt(int64(n - 1))).
		Div(decimal.NewFromInt(100))
	idx := pos.IntPart()
	if idx >= int64(n-1) {
		return sorted[n-1]
	}

	frac := pos.Sub(decimal.NewFromInt(idx))
	lower := sorted[idx]
	upper := sorted[idx+1]
	return lower.Add(upper.Sub(lower).Mul(frac))
}

// CohortStats summarizes a cohort's adjusted-price distribution for the
// read API. Advisory numbers only; float precision is fine here.
type CohortStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
}

func SummarizeCohort(cohort []decimal.Decimal) (*CohortStats, error) {
	if len(cohort) == 0 {
		return nil, nil
	}

	values := make([]float64, len(cohort))
	for i, price := range cohort {
		values[i] = price.InexactFloat64()
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, err
	}

	stdDev := 0.0
	if len(values) >= 2 {
		stdDev, err = stats.StandardDeviationSample(values)
		if err != nil {
			return nil, err
		}
	}

	return &CohortStats{Mean: mean, Median: median, StdDev: stdDev}, nil
}
