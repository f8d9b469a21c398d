package integration_tests

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"
	"rigvalue/internal/repository"
	"rigvalue/internal/service"
	"rigvalue/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type seededCatalog struct {
	cpuID      uuid.UUID
	groupID    uuid.UUID
	profileID  uuid.UUID
	ruleID     uuid.UUID
	listingIDs []uuid.UUID
}

func seedCatalog(t *testing.T, db *sql.DB) seededCatalog {
	t.Helper()

	seeded := seededCatalog{}
	now := time.Now().UTC()

	cpu := model.ComponentSpec{}
	err := table.ComponentSpec.
		INSERT(table.ComponentSpec.MutableColumns).
		MODEL(model.ComponentSpec{
			Kind:             "cpu",
			Name:             "Intel Core i5-9500",
			MarkSingleThread: util.FloatPointer(2000),
			MarkMultiThread:  util.FloatPointer(9500),
			CreatedAt:        now,
			UpdatedAt:        now,
		}).
		RETURNING(table.ComponentSpec.AllColumns).
		Query(db, &cpu)
	require.NoError(t, err)
	seeded.cpuID = cpu.ComponentID

	group := model.ValuationRuleGroup{}
	err = table.ValuationRuleGroup.
		INSERT(table.ValuationRuleGroup.MutableColumns).
		MODEL(model.ValuationRuleGroup{
			Name:      "memory",
			Weight:    1,
			CreatedAt: now,
			UpdatedAt: now,
		}).
		RETURNING(table.ValuationRuleGroup.AllColumns).
		Query(db, &group)
	require.NoError(t, err)
	seeded.groupID = group.GroupID

	rule := model.ValuationRule{}
	err = table.ValuationRule.
		INSERT(table.ValuationRule.MutableColumns).
		MODEL(model.ValuationRule{
			GroupID:           group.GroupID,
			Name:              "low ram discount",
			ConditionField:    "ram_gb",
			ConditionOperator: string(domain.OperatorLt),
			ConditionValue:    `{"kind":"number","value":16}`,
			ActionKind:        string(domain.ActionFixedAmount),
			ActionParams:      `{"amount":-50}`,
			IsActive:          true,
			Priority:          10,
			CreatedAt:         now,
			UpdatedAt:         now,
		}).
		RETURNING(table.ValuationRule.AllColumns).
		Query(db, &rule)
	require.NoError(t, err)
	seeded.ruleID = rule.RuleID

	profile := model.ScoringProfile{}
	err = table.ScoringProfile.
		INSERT(table.ScoringProfile.MutableColumns).
		MODEL(model.ScoringProfile{
			Name:             "integration-default",
			IsDefault:        true,
			RuleGroupWeights: `{}`,
			DimensionWeights: `{}`,
			CreatedAt:        now,
			UpdatedAt:        now,
		}).
		RETURNING(table.ScoringProfile.AllColumns).
		Query(db, &profile)
	require.NoError(t, err)
	seeded.profileID = profile.ProfileID

	type listingRow struct {
		Title    string  `csv:"title"`
		RawPrice float64 `csv:"raw_price"`
		RamGb    int     `csv:"ram_gb"`
	}

	f, err := os.Open("sample_listings.csv")
	require.NoError(t, err)
	defer f.Close()

	rows := []listingRow{}
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	require.NotEmpty(t, rows)

	for _, row := range rows {
		listing := model.Listing{}
		err = table.Listing.
			INSERT(table.Listing.MutableColumns).
			MODEL(model.Listing{
				Title:           row.Title,
				RawPrice:        row.RawPrice,
				CpuID:           cpu.ComponentID,
				Attributes:      fmt.Sprintf(`{"ram_gb":{"kind":"number","value":%d}}`, row.RamGb),
				ValuationStatus: string(domain.StatusUnvalued),
				CreatedAt:       now,
				UpdatedAt:       now,
			}).
			RETURNING(table.Listing.AllColumns).
			Query(db, &listing)
		require.NoError(t, err)
		seeded.listingIDs = append(seeded.listingIDs, listing.ListingID)
	}

	return seeded
}

func cleanupCatalog(t *testing.T, db *sql.DB, seeded seededCatalog) {
	t.Helper()

	listingExprs := []postgres.Expression{}
	for _, id := range seeded.listingIDs {
		listingExprs = append(listingExprs, postgres.UUID(id))
	}

	if len(listingExprs) > 0 {
		_, err := table.ValuationBreakdown.DELETE().
			WHERE(table.ValuationBreakdown.ListingID.IN(listingExprs...)).
			Exec(db)
		require.NoError(t, err)
		_, err = table.Listing.DELETE().
			WHERE(table.Listing.ListingID.IN(listingExprs...)).
			Exec(db)
		require.NoError(t, err)
	}

	_, err := table.ValuationRule.DELETE().
		WHERE(table.ValuationRule.RuleID.EQ(postgres.UUID(seeded.ruleID))).
		Exec(db)
	require.NoError(t, err)
	_, err = table.ValuationRuleGroup.DELETE().
		WHERE(table.ValuationRuleGroup.GroupID.EQ(postgres.UUID(seeded.groupID))).
		Exec(db)
	require.NoError(t, err)
	_, err = table.ScoringProfile.DELETE().
		WHERE(table.ScoringProfile.ProfileID.EQ(postgres.UUID(seeded.profileID))).
		Exec(db)
	require.NoError(t, err)
	_, err = table.ComponentSpec.DELETE().
		WHERE(table.ComponentSpec.ComponentID.EQ(postgres.UUID(seeded.cpuID))).
		Exec(db)
	require.NoError(t, err)
}

func Test_RevalueAll_endToEnd(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db not available: %s", err)
	}

	seeded := seedCatalog(t, db)
	defer cleanupCatalog(t, db, seeded)

	listingRepository := repository.NewListingRepository(db)
	breakdownRepository := repository.NewValuationBreakdownRepository(db)

	valuationService := service.NewValuationService(
		db,
		listingRepository,
		repository.NewComponentRepository(db),
		repository.NewValuationRuleRepository(db),
		repository.NewScoringProfileRepository(db),
		breakdownRepository,
	)

	result, err := valuationService.RevalueMany(context.Background(), seeded.listingIDs)
	require.NoError(t, err)
	require.Equal(t, len(seeded.listingIDs), result.Succeeded)
	require.Equal(t, 0, result.Failed)

	// csv order: 500/8gb, 300/16gb, 250/8gb, 400/32gb
	expected := []float64{450, 300, 200, 400}
	for i, listingID := range seeded.listingIDs {
		listing, err := listingRepository.Get(listingID)
		require.NoError(t, err)

		require.Equal(t, string(domain.StatusValued), listing.ValuationStatus)
		require.NotNil(t, listing.AdjustedPrice)
		require.InDelta(t, expected[i], *listing.AdjustedPrice, 1e-9)

		breakdown, err := breakdownRepository.GetByListingID(listingID)
		require.NoError(t, err)
		require.True(t, breakdown.AdjustedPrice.Equal(decimal.NewFromFloat(expected[i])),
			"listing %d: got %s", i, breakdown.AdjustedPrice)

		sum := decimal.Zero
		for _, a := range breakdown.Adjustments {
			sum = sum.Add(a.Amount)
		}
		require.True(t, sum.Equal(breakdown.TotalAdjustment))
	}

	// a second pass over already-valued listings lands on the same numbers
	result, err = valuationService.RevalueMany(context.Background(), seeded.listingIDs)
	require.NoError(t, err)
	require.Equal(t, len(seeded.listingIDs), result.Succeeded)

	for i, listingID := range seeded.listingIDs {
		listing, err := listingRepository.Get(listingID)
		require.NoError(t, err)
		require.InDelta(t, expected[i], *listing.AdjustedPrice, 1e-9)
	}
}
