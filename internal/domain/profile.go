package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScoringProfile is the named set of weights applied during one valuation.
// Exactly one profile is the default; resolving it happens once at the
// orchestrator boundary and the resolved profile is passed explicitly.
type ScoringProfile struct {
	ProfileID uuid.UUID
	Name      string
	IsDefault bool

	// RuleGroupWeights overrides group default weights, keyed by group id.
	RuleGroupWeights map[uuid.UUID]decimal.Decimal

	// DimensionWeights weights benchmark dimensions for the composite mark.
	DimensionWeights map[BenchmarkDimension]decimal.Decimal
}

func (p ScoringProfile) EffectiveGroupWeight(group RuleGroup) decimal.Decimal {
	if w, ok := p.RuleGroupWeights[group.GroupID]; ok {
		return w
	}
	return group.Weight
}
