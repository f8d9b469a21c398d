package calculator

import (
	"sort"

	"rigvalue/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MatchedRule struct {
	Rule          domain.ValuationRule
	RawAdjustment decimal.Decimal
}

type AggregateResult struct {
	TotalAdjustment   decimal.Decimal
	AdjustedPrice     decimal.Decimal
	MatchedRulesCount int
	Clamped           bool
	Adjustments       []domain.RuleAdjustment
}

// EvaluateRules runs every active rule's condition and action against the
// snapshot. All rules are evaluated independently; priority never
// short-circuits. Inapplicable actions are dropped the same way unmatched
// conditions are.
func EvaluateRules(snapshot domain.ListingSnapshot, rules []domain.ValuationRule) []MatchedRule {
	matched := []MatchedRule{}
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if !MatchesCondition(rule.Condition, snapshot) {
			continue
		}
		raw, applicable := ComputeAdjustment(rule.Action, snapshot)
		if !applicable {
			continue
		}
		matched = append(matched, MatchedRule{Rule: rule, RawAdjustment: raw})
	}
	return matched
}

// Aggregate weights each matched rule's raw adjustment by its effective
// group weight, writes per-rule amounts rounded half-even to the cent, and
// sums those written amounts exactly, so sum(adjustments) always equals
// the total. Breakdown order is (priority asc, rule id asc); the id
// tie-break keeps colliding priorities deterministic.
//
// Sign convention: negative = discount found, so
// adjustedPrice = rawPrice + total, floor-clamped at zero with the clamp
// recorded on the result.
func Aggregate(
	matched []MatchedRule,
	groups map[uuid.UUID]domain.RuleGroup,
	profile domain.ScoringProfile,
	rawPrice decimal.Decimal,
) (*AggregateResult, error) {
	ordered := make([]MatchedRule, len(matched))
	copy(ordered, matched)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Rule.Priority != ordered[j].Rule.Priority {
			return ordered[i].Rule.Priority < ordered[j].Rule.Priority
		}
		return ordered[i].Rule.RuleID.String() < ordered[j].Rule.RuleID.String()
	})

	total := decimal.Zero
	adjustments := []domain.RuleAdjustment{}
	for _, m := range ordered {
		group, ok := groups[m.Rule.GroupID]
		if !ok {
			return nil, domain.NewConfigurationError(
				"rule %s references unknown group %s",
				m.Rule.RuleID, m.Rule.GroupID,
			)
		}
		amount := m.RawAdjustment.Mul(profile.EffectiveGroupWeight(group)).RoundBank(2)
		total = total.Add(amount)
		adjustments = append(adjustments, domain.RuleAdjustment{
			RuleID:        m.Rule.RuleID,
			RuleName:      m.Rule.Name,
			RuleGroupName: group.Name,
			Amount:        amount,
		})
	}

	adjusted := rawPrice.Add(total)
	clamped := false
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
		clamped = true
	}

	return &AggregateResult{
		TotalAdjustment:   total,
		AdjustedPrice:     adjusted,
		MatchedRulesCount: len(ordered),
		Clamped:           clamped,
		Adjustments:       adjustments,
	}, nil
}
