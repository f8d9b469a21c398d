package repository

import (
	"encoding/json"
	"testing"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_breakdownToDomain(t *testing.T) {
	t.Run("cent amounts survive the float columns exactly", func(t *testing.T) {
		adjustments := []domain.RuleAdjustment{
			{RuleID: uuid.New(), RuleName: "low ram", RuleGroupName: "memory", Amount: decimal.NewFromFloat(-50)},
			{RuleID: uuid.New(), RuleName: "old gen", RuleGroupName: "cpu", Amount: decimal.NewFromFloat(-33.34)},
			{RuleID: uuid.New(), RuleName: "ssd bonus", RuleGroupName: "storage", Amount: decimal.NewFromFloat(16.67)},
		}
		encoded, err := json.Marshal(adjustments)
		require.NoError(t, err)

		total := decimal.NewFromFloat(-66.67)
		adjusted := decimal.NewFromFloat(433.32)

		row := model.ValuationBreakdown{
			BreakdownID:       uuid.New(),
			ListingID:         uuid.New(),
			ListingPrice:      decimal.NewFromFloat(499.99).InexactFloat64(),
			AdjustedPrice:     adjusted.InexactFloat64(),
			TotalAdjustment:   total.InexactFloat64(),
			MatchedRulesCount: 3,
			Adjustments:       string(encoded),
		}

		got, err := breakdownToDomain(row)
		require.NoError(t, err)

		require.True(t, got.AdjustedPrice.Equal(adjusted), "got %s", got.AdjustedPrice)
		require.True(t, got.TotalAdjustment.Equal(total), "got %s", got.TotalAdjustment)

		sum := decimal.Zero
		for _, a := range got.Adjustments {
			sum = sum.Add(a.Amount)
		}
		require.True(t, sum.Equal(got.TotalAdjustment), "sum %s != total %s", sum, got.TotalAdjustment)
	})
}
