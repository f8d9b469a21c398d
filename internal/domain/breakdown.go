package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleAdjustment is one matched rule's contribution to the breakdown.
// Amount is rounded half-even to the cent when written; negative means a
// discount was found.
type RuleAdjustment struct {
	RuleID        uuid.UUID       `json:"rule_id"`
	RuleName      string          `json:"rule_name"`
	RuleGroupName string          `json:"rule_group_name"`
	Amount        decimal.Decimal `json:"adjustment_amount"`
}

// ValuationBreakdown is the immutable-per-computation audit record for one
// valuation pass. It is replaced wholesale on every recompute so the
// breakdown and the adjusted price can never disagree.
type ValuationBreakdown struct {
	BreakdownID       uuid.UUID        `json:"breakdown_id"`
	ListingID         uuid.UUID        `json:"listing_id"`
	ListingPrice      decimal.Decimal  `json:"listing_price"`
	AdjustedPrice     decimal.Decimal  `json:"adjusted_price"`
	TotalAdjustment   decimal.Decimal  `json:"total_adjustment"`
	MatchedRulesCount int              `json:"matched_rules_count"`
	Clamped           bool             `json:"clamped"`
	Adjustments       []RuleAdjustment `json:"adjustments"`
	ComputedAt        time.Time        `json:"computed_at"`
}

type ValueRating string

const (
	RatingExcellent ValueRating = "excellent"
	RatingGood      ValueRating = "good"
	RatingFair      ValueRating = "fair"
	RatingPoor      ValueRating = "poor"
)

// DerivedMetrics is the metric deriver's output: dollar cost per benchmark
// mark for every dimension the listing has a usable mark on, plus the
// cohort-relative value rating at the primary dimension.
type DerivedMetrics struct {
	DollarPerMark map[BenchmarkDimension]decimal.Decimal

	// DollarPerComposite divides the adjusted price by the
	// dimension-weighted composite mark. Nil when no weighted dimension
	// has a mark.
	DollarPerComposite *decimal.Decimal

	// Rating is empty when the listing has no mark at the primary
	// dimension.
	Rating ValueRating
}
