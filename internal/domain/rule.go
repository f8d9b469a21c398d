package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConditionOperator string

const (
	OperatorEq      ConditionOperator = "eq"
	OperatorNeq     ConditionOperator = "neq"
	OperatorLt      ConditionOperator = "lt"
	OperatorLte     ConditionOperator = "lte"
	OperatorGt      ConditionOperator = "gt"
	OperatorGte     ConditionOperator = "gte"
	OperatorIn      ConditionOperator = "in"
	OperatorMatches ConditionOperator = "matches"
)

type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchRegex     MatchMode = "regex"
)

// RuleCondition describes when a rule fires. Field is a path into the
// listing's attribute map or a well-known computed field (raw_price,
// cpu.mark_single, ...). Value/Values/Pattern are populated per operator.
type RuleCondition struct {
	Field    string
	Operator ConditionOperator

	// eq/neq and ordered comparisons
	Value AttributeValue

	// in
	Values []AttributeValue

	// matches
	Pattern   string
	MatchMode MatchMode
}

type ActionKind string

const (
	ActionFixedAmount    ActionKind = "fixed_amount"
	ActionPercentOfPrice ActionKind = "percent_of_price"
	ActionBenchmarkDelta ActionKind = "benchmark_delta_formula"
)

// RuleAction is the sealed set of adjustment formulas. Each variant carries
// only its own parameters.
type RuleAction interface {
	ActionKind() ActionKind
}

// FixedAmountAction contributes a constant dollar delta. Negative means a
// discount credited to the buyer.
type FixedAmountAction struct {
	Amount decimal.Decimal
}

func (FixedAmountAction) ActionKind() ActionKind { return ActionFixedAmount }

// PercentOfPriceAction contributes Percent% of the listing's raw price.
type PercentOfPriceAction struct {
	Percent decimal.Decimal
}

func (PercentOfPriceAction) ActionKind() ActionKind { return ActionPercentOfPrice }

// BenchmarkDeltaAction contributes Coefficient * (listing mark - Baseline)
// at the given benchmark dimension. Inapplicable when the listing has no
// usable mark for the dimension.
type BenchmarkDeltaAction struct {
	Dimension   BenchmarkDimension
	Coefficient decimal.Decimal
	Baseline    decimal.Decimal
}

func (BenchmarkDeltaAction) ActionKind() ActionKind { return ActionBenchmarkDelta }

type ValuationRule struct {
	RuleID    uuid.UUID
	GroupID   uuid.UUID
	Name      string
	Condition RuleCondition
	Action    RuleAction
	IsActive  bool

	// Priority orders the breakdown only. All active rules are always
	// evaluated; there is no short-circuiting.
	Priority int32
}

type RuleGroup struct {
	GroupID uuid.UUID
	Name    string
	Weight  decimal.Decimal
}

// RuleSnapshot is the consistent view of valuation configuration a
// recompute pass runs against. It is loaded once per pass and never
// mutated mid-evaluation.
type RuleSnapshot struct {
	Rules   []ValuationRule
	Groups  map[uuid.UUID]RuleGroup
	Profile ScoringProfile
}
