package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/domain"
	mock_repository "rigvalue/internal/repository/mocks"
	"rigvalue/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db not available: %s", err)
	}
	return db
}

type valuationMocks struct {
	listing   *mock_repository.MockListingRepository
	component *mock_repository.MockComponentRepository
	rule      *mock_repository.MockValuationRuleRepository
	profile   *mock_repository.MockScoringProfileRepository
	breakdown *mock_repository.MockValuationBreakdownRepository
}

func newValuationHandler(ctrl *gomock.Controller, db *sql.DB) (*valuationServiceHandler, valuationMocks) {
	m := valuationMocks{
		listing:   mock_repository.NewMockListingRepository(ctrl),
		component: mock_repository.NewMockComponentRepository(ctrl),
		rule:      mock_repository.NewMockValuationRuleRepository(ctrl),
		profile:   mock_repository.NewMockScoringProfileRepository(ctrl),
		breakdown: mock_repository.NewMockValuationBreakdownRepository(ctrl),
	}
	handler := &valuationServiceHandler{
		Db:                           db,
		ListingRepository:            m.listing,
		ComponentRepository:          m.component,
		ValuationRuleRepository:      m.rule,
		ScoringProfileRepository:     m.profile,
		ValuationBreakdownRepository: m.breakdown,
		listingLocks:                 newKeyedMutex(),
	}
	return handler, m
}

func lowRamRuleFixture(groupID uuid.UUID) ([]domain.ValuationRule, map[uuid.UUID]domain.RuleGroup, *domain.ScoringProfile) {
	rules := []domain.ValuationRule{
		{
			RuleID:  uuid.New(),
			GroupID: groupID,
			Name:    "low ram",
			Condition: domain.RuleCondition{
				Field:    "ram_gb",
				Operator: domain.OperatorLt,
				Value:    domain.NumberAttribute(16),
			},
			Action:   domain.FixedAmountAction{Amount: decimal.NewFromInt(-50)},
			IsActive: true,
			Priority: 10,
		},
	}
	groups := map[uuid.UUID]domain.RuleGroup{
		groupID: {GroupID: groupID, Name: "memory", Weight: decimal.NewFromInt(1)},
	}
	profile := &domain.ScoringProfile{ProfileID: uuid.New(), IsDefault: true}
	return rules, groups, profile
}

func Test_valuationServiceHandler_Revalue(t *testing.T) {
	t.Run("persists breakdown and listing fields atomically", func(t *testing.T) {
		db := testDb(t)

		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, db)

		groupID := uuid.New()
		rules, groups, profile := lowRamRuleFixture(groupID)
		m.rule.EXPECT().ListActive().Return(rules, nil)
		m.rule.EXPECT().ListGroups().Return(groups, nil)
		m.profile.EXPECT().GetDefault().Return(profile, nil)

		listingID := uuid.New()
		cpuID := uuid.New()
		m.listing.EXPECT().Get(listingID).Return(&model.Listing{
			ListingID:  listingID,
			RawPrice:   500,
			CpuID:      cpuID,
			Attributes: `{"ram_gb":{"kind":"number","value":8}}`,
		}, nil)

		m.component.EXPECT().GetMany([]uuid.UUID{cpuID}).Return([]domain.ComponentSpec{
			{
				ComponentID: cpuID,
				Kind:        domain.ComponentCPU,
				Name:        "Ryzen 5 3600",
				Marks: map[domain.BenchmarkDimension]float64{
					domain.DimensionSingleThread: 2000,
				},
			},
		}, nil)

		m.listing.EXPECT().GetCohortDollarPerMark(cpuID).Return([]float64{}, nil)
		m.listing.EXPECT().GetCohortAdjustedPrices(cpuID, listingID).Return([]decimal.Decimal{}, nil)

		var persisted domain.ValuationBreakdown
		m.breakdown.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, b domain.ValuationBreakdown) (*model.ValuationBreakdown, error) {
				require.NotNil(t, tx)
				persisted = b
				return &model.ValuationBreakdown{BreakdownID: b.BreakdownID}, nil
			})
		m.listing.EXPECT().
			UpdateValuation(gomock.Any(), listingID, gomock.Any()).
			Return(nil)

		breakdown, err := handler.Revalue(context.Background(), listingID)
		require.NoError(t, err)

		require.True(t, breakdown.AdjustedPrice.Equal(decimal.NewFromInt(450)), "got %s", breakdown.AdjustedPrice)
		require.True(t, breakdown.TotalAdjustment.Equal(decimal.NewFromInt(-50)))
		require.Equal(t, 1, breakdown.MatchedRulesCount)
		require.False(t, breakdown.Clamped)

		// what reached the store is what the caller got back
		require.Equal(t, breakdown.BreakdownID, persisted.BreakdownID)
		sum := decimal.Zero
		for _, a := range persisted.Adjustments {
			sum = sum.Add(a.Amount)
		}
		require.True(t, sum.Equal(persisted.TotalAdjustment))

		// dollar/mark: 450 / 2000
		require.True(t, breakdown.AdjustedPrice.Div(decimal.NewFromInt(2000)).Equal(decimal.NewFromFloat(0.225)))
	})

	t.Run("missing default profile surfaces a configuration error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, nil)

		m.rule.EXPECT().ListActive().Return([]domain.ValuationRule{}, nil)
		m.rule.EXPECT().ListGroups().Return(map[uuid.UUID]domain.RuleGroup{}, nil)
		m.profile.EXPECT().GetDefault().Return(nil, domain.NewConfigurationError("no default scoring profile configured"))

		_, err := handler.Revalue(context.Background(), uuid.New())
		require.Error(t, err)

		confErr := domain.ConfigurationError{}
		require.True(t, errors.As(err, &confErr))
	})

	t.Run("revaluing twice with the same inputs is idempotent", func(t *testing.T) {
		db := testDb(t)

		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, db)

		groupID := uuid.New()
		rules, groups, profile := lowRamRuleFixture(groupID)
		m.rule.EXPECT().ListActive().Return(rules, nil).Times(2)
		m.rule.EXPECT().ListGroups().Return(groups, nil).Times(2)
		m.profile.EXPECT().GetDefault().Return(profile, nil).Times(2)

		listingID := uuid.New()
		cpuID := uuid.New()
		m.listing.EXPECT().Get(listingID).Return(&model.Listing{
			ListingID:  listingID,
			RawPrice:   500,
			CpuID:      cpuID,
			Attributes: `{"ram_gb":{"kind":"number","value":8}}`,
		}, nil).Times(2)
		m.component.EXPECT().GetMany([]uuid.UUID{cpuID}).Return([]domain.ComponentSpec{
			{ComponentID: cpuID, Kind: domain.ComponentCPU},
		}, nil).Times(2)
		m.listing.EXPECT().GetCohortDollarPerMark(cpuID).Return([]float64{}, nil).Times(2)
		m.listing.EXPECT().GetCohortAdjustedPrices(cpuID, listingID).Return([]decimal.Decimal{}, nil).Times(2)
		m.breakdown.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(&model.ValuationBreakdown{}, nil).Times(2)
		m.listing.EXPECT().UpdateValuation(gomock.Any(), listingID, gomock.Any()).Return(nil).Times(2)

		first, err := handler.Revalue(context.Background(), listingID)
		require.NoError(t, err)
		second, err := handler.Revalue(context.Background(), listingID)
		require.NoError(t, err)

		require.True(t, first.AdjustedPrice.Equal(second.AdjustedPrice))
		require.True(t, first.TotalAdjustment.Equal(second.TotalAdjustment))
		require.Equal(t, first.MatchedRulesCount, second.MatchedRulesCount)
	})
}

func Test_valuationServiceHandler_RevalueAll(t *testing.T) {
	t.Run("loads the rule snapshot once for the whole pass", func(t *testing.T) {
		db := testDb(t)

		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, db)

		groupID := uuid.New()
		rules, groups, profile := lowRamRuleFixture(groupID)
		m.rule.EXPECT().ListActive().Return(rules, nil).Times(1)
		m.rule.EXPECT().ListGroups().Return(groups, nil).Times(1)
		m.profile.EXPECT().GetDefault().Return(profile, nil).Times(1)

		cpuID := uuid.New()
		listingA := model.Listing{ListingID: uuid.New(), RawPrice: 500, CpuID: cpuID, Attributes: `{"ram_gb":{"kind":"number","value":8}}`}
		listingB := model.Listing{ListingID: uuid.New(), RawPrice: 300, CpuID: cpuID, Attributes: `{"ram_gb":{"kind":"number","value":32}}`}

		m.listing.EXPECT().List(gomock.Any()).Return([]model.Listing{listingA, listingB}, nil)
		m.listing.EXPECT().Get(listingA.ListingID).Return(&listingA, nil)
		m.listing.EXPECT().Get(listingB.ListingID).Return(&listingB, nil)
		m.component.EXPECT().GetMany([]uuid.UUID{cpuID}).Return([]domain.ComponentSpec{
			{ComponentID: cpuID, Kind: domain.ComponentCPU},
		}, nil).Times(2)
		m.listing.EXPECT().GetCohortDollarPerMark(cpuID).Return([]float64{}, nil).Times(2)
		m.listing.EXPECT().GetCohortAdjustedPrices(cpuID, gomock.Any()).Return([]decimal.Decimal{}, nil).Times(2)
		m.breakdown.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(&model.ValuationBreakdown{}, nil).Times(2)
		m.listing.EXPECT().UpdateValuation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := handler.RevalueAll(context.Background())
		require.NoError(t, err)

		require.Equal(t, 2, result.Succeeded)
		require.Equal(t, 0, result.Failed)
	})

	t.Run("one bad listing does not sink the pass", func(t *testing.T) {
		db := testDb(t)

		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, db)

		groupID := uuid.New()
		rules, groups, profile := lowRamRuleFixture(groupID)
		m.rule.EXPECT().ListActive().Return(rules, nil)
		m.rule.EXPECT().ListGroups().Return(groups, nil)
		m.profile.EXPECT().GetDefault().Return(profile, nil)

		cpuID := uuid.New()
		good := model.Listing{ListingID: uuid.New(), RawPrice: 500, CpuID: cpuID, Attributes: `{"ram_gb":{"kind":"number","value":8}}`}
		bad := model.Listing{ListingID: uuid.New(), RawPrice: 300, CpuID: cpuID}

		m.listing.EXPECT().List(gomock.Any()).Return([]model.Listing{good, bad}, nil)
		m.listing.EXPECT().Get(good.ListingID).Return(&good, nil)
		m.listing.EXPECT().Get(bad.ListingID).Return(nil, errors.New("row vanished"))
		m.component.EXPECT().GetMany([]uuid.UUID{cpuID}).Return([]domain.ComponentSpec{
			{ComponentID: cpuID, Kind: domain.ComponentCPU},
		}, nil)
		m.listing.EXPECT().GetCohortDollarPerMark(cpuID).Return([]float64{}, nil)
		m.listing.EXPECT().GetCohortAdjustedPrices(cpuID, good.ListingID).Return([]decimal.Decimal{}, nil)
		m.breakdown.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(&model.ValuationBreakdown{}, nil)
		m.listing.EXPECT().UpdateValuation(gomock.Any(), good.ListingID, gomock.Any()).Return(nil)

		result, err := handler.RevalueAll(context.Background())
		require.NoError(t, err)

		require.Equal(t, 1, result.Succeeded)
		require.Equal(t, 1, result.Failed)
		require.Contains(t, result.Errors[bad.ListingID], "row vanished")
	})

	t.Run("a cancelled pass returns instead of hanging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newValuationHandler(ctrl, nil)

		groupID := uuid.New()
		rules, groups, profile := lowRamRuleFixture(groupID)
		m.rule.EXPECT().ListActive().Return(rules, nil)
		m.rule.EXPECT().ListGroups().Return(groups, nil)
		m.profile.EXPECT().GetDefault().Return(profile, nil)

		// enough listings that some are still queued when the workers see
		// the cancellation
		listingIDs := make([]uuid.UUID, 500)
		for i := range listingIDs {
			listingIDs[i] = uuid.New()
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan error, 1)
		go func() {
			_, err := handler.RevalueMany(ctx, listingIDs)
			done <- err
		}()

		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("bulk revalue did not return after cancellation")
		}
	})
}

func Test_keyedMutex(t *testing.T) {
	t.Run("same key serializes", func(t *testing.T) {
		km := newKeyedMutex()
		id := uuid.New()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.lock(id)
				defer unlock()
				current := counter
				time.Sleep(time.Millisecond)
				counter = current + 1
			}()
		}
		wg.Wait()

		require.Equal(t, 20, counter)
	})

	t.Run("distinct keys do not block each other", func(t *testing.T) {
		km := newKeyedMutex()

		unlockA := km.lock(uuid.New())
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlockB := km.lock(uuid.New())
			unlockB()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on a different key blocked")
		}
	})
}
