package calculator

import (
	"rigvalue/internal/domain"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeAdjustment evaluates a matched rule's action against the listing
// snapshot and returns the raw signed dollar delta. The second return is
// false when the action is inapplicable (a formula lacking its benchmark
// mark); the rule is then skipped rather than failing the valuation.
//
// No rounding happens here. Raw adjustments stay exact until the aggregator
// writes the final per-rule amounts.
func ComputeAdjustment(action domain.RuleAction, snapshot domain.ListingSnapshot) (decimal.Decimal, bool) {
	switch a := action.(type) {
	case domain.FixedAmountAction:
		return a.Amount, true

	case domain.PercentOfPriceAction:
		return a.Percent.Mul(snapshot.RawPrice).Div(oneHundred), true

	case domain.BenchmarkDeltaAction:
		mark, ok := snapshot.Mark(a.Dimension)
		if !ok || mark <= 0 {
			return decimal.Zero, false
		}
		delta := decimal.NewFromFloat(mark).Sub(a.Baseline)
		return a.Coefficient.Mul(delta), true
	}

	return decimal.Zero, false
}
