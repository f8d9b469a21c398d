package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValuationRuleRepository interface {
	ListActive() ([]domain.ValuationRule, error)
	ListGroups() (map[uuid.UUID]domain.RuleGroup, error)
}

type valuationRuleRepositoryHandler struct {
	Db *sql.DB
}

func NewValuationRuleRepository(db *sql.DB) ValuationRuleRepository {
	return valuationRuleRepositoryHandler{Db: db}
}

func (h valuationRuleRepositoryHandler) ListActive() ([]domain.ValuationRule, error) {
	query := table.ValuationRule.
		SELECT(table.ValuationRule.AllColumns).
		WHERE(table.ValuationRule.IsActive.IS_TRUE()).
		ORDER_BY(table.ValuationRule.Priority.ASC(), table.ValuationRule.RuleID.ASC())

	results := []model.ValuationRule{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}

	rules := []domain.ValuationRule{}
	for _, result := range results {
		rule, err := ruleToDomain(result)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}

	return rules, nil
}

func (h valuationRuleRepositoryHandler) ListGroups() (map[uuid.UUID]domain.RuleGroup, error) {
	query := table.ValuationRuleGroup.
		SELECT(table.ValuationRuleGroup.AllColumns)

	results := []model.ValuationRuleGroup{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list rule groups: %w", err)
	}

	groups := map[uuid.UUID]domain.RuleGroup{}
	for _, result := range results {
		groups[result.GroupID] = domain.RuleGroup{
			GroupID: result.GroupID,
			Name:    result.Name,
			Weight:  decimal.NewFromFloat(result.Weight),
		}
	}

	return groups, nil
}

type matchesConditionValue struct {
	Pattern string `json:"pattern"`
	Mode    string `json:"mode"`
}

func ruleToDomain(m model.ValuationRule) (*domain.ValuationRule, error) {
	condition, err := decodeCondition(m)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", m.RuleID.String(), err)
	}
	action, err := decodeAction(m.ActionKind, m.ActionParams)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", m.RuleID.String(), err)
	}

	return &domain.ValuationRule{
		RuleID:    m.RuleID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		Condition: *condition,
		Action:    action,
		IsActive:  m.IsActive,
		Priority:  m.Priority,
	}, nil
}

func decodeCondition(m model.ValuationRule) (*domain.RuleCondition, error) {
	condition := domain.RuleCondition{
		Field:    m.ConditionField,
		Operator: domain.ConditionOperator(m.ConditionOperator),
	}

	switch condition.Operator {
	case domain.OperatorIn:
		values := []domain.AttributeValue{}
		if err := json.Unmarshal([]byte(m.ConditionValue), &values); err != nil {
			return nil, fmt.Errorf("failed to decode set condition value: %w", err)
		}
		condition.Values = values
	case domain.OperatorMatches:
		mc := matchesConditionValue{}
		if err := json.Unmarshal([]byte(m.ConditionValue), &mc); err != nil {
			return nil, fmt.Errorf("failed to decode match condition value: %w", err)
		}
		condition.Pattern = mc.Pattern
		condition.MatchMode = domain.MatchMode(mc.Mode)
	default:
		value := domain.AttributeValue{}
		if err := json.Unmarshal([]byte(m.ConditionValue), &value); err != nil {
			return nil, fmt.Errorf("failed to decode condition value: %w", err)
		}
		condition.Value = value
	}

	return &condition, nil
}

type fixedAmountParams struct {
	Amount decimal.Decimal `json:"amount"`
}

type percentOfPriceParams struct {
	Percent decimal.Decimal `json:"percent"`
}

type benchmarkDeltaParams struct {
	Dimension   string          `json:"dimension"`
	Coefficient decimal.Decimal `json:"coefficient"`
	Baseline    decimal.Decimal `json:"baseline"`
}

func decodeAction(kind string, params string) (domain.RuleAction, error) {
	switch domain.ActionKind(kind) {
	case domain.ActionFixedAmount:
		p := fixedAmountParams{}
		if err := json.Unmarshal([]byte(params), &p); err != nil {
			return nil, fmt.Errorf("failed to decode fixed amount params: %w", err)
		}
		return domain.FixedAmountAction{Amount: p.Amount}, nil
	case domain.ActionPercentOfPrice:
		p := percentOfPriceParams{}
		if err := json.Unmarshal([]byte(params), &p); err != nil {
			return nil, fmt.Errorf("failed to decode percent of price params: %w", err)
		}
		return domain.PercentOfPriceAction{Percent: p.Percent}, nil
	case domain.ActionBenchmarkDelta:
		p := benchmarkDeltaParams{}
		if err := json.Unmarshal([]byte(params), &p); err != nil {
			return nil, fmt.Errorf("failed to decode benchmark delta params: %w", err)
		}
		return domain.BenchmarkDeltaAction{
			Dimension:   domain.BenchmarkDimension(p.Dimension),
			Coefficient: p.Coefficient,
			Baseline:    p.Baseline,
		}, nil
	}

	return nil, domain.NewConfigurationError("unknown action kind %q", kind)
}
