package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"rigvalue/internal/calculator"
	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/domain"
	"rigvalue/internal/logger"
	"rigvalue/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BulkRevalueResult struct {
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Errors    map[uuid.UUID]string `json:"errors,omitempty"`
}

type ValuationService interface {
	// Revalue recomputes one listing end to end and persists the breakdown
	// plus the denormalized listing fields in a single transaction.
	Revalue(ctx context.Context, listingID uuid.UUID) (*domain.ValuationBreakdown, error)
	RevalueMany(ctx context.Context, listingIDs []uuid.UUID) (*BulkRevalueResult, error)
	// RevalueComponent recomputes every listing referencing the component.
	RevalueComponent(ctx context.Context, componentID uuid.UUID) (*BulkRevalueResult, error)
	RevalueAll(ctx context.Context) (*BulkRevalueResult, error)
}

type valuationServiceHandler struct {
	Db                           *sql.DB
	ListingRepository            repository.ListingRepository
	ComponentRepository          repository.ComponentRepository
	ValuationRuleRepository      repository.ValuationRuleRepository
	ScoringProfileRepository     repository.ScoringProfileRepository
	ValuationBreakdownRepository repository.ValuationBreakdownRepository

	listingLocks *keyedMutex
}

func NewValuationService(
	db *sql.DB,
	listingRepository repository.ListingRepository,
	componentRepository repository.ComponentRepository,
	valuationRuleRepository repository.ValuationRuleRepository,
	scoringProfileRepository repository.ScoringProfileRepository,
	valuationBreakdownRepository repository.ValuationBreakdownRepository,
) ValuationService {
	return &valuationServiceHandler{
		Db:                           db,
		ListingRepository:            listingRepository,
		ComponentRepository:          componentRepository,
		ValuationRuleRepository:      valuationRuleRepository,
		ScoringProfileRepository:     scoringProfileRepository,
		ValuationBreakdownRepository: valuationBreakdownRepository,
		listingLocks:                 newKeyedMutex(),
	}
}

// keyedMutex serializes revaluations per listing. Two concurrent revalues
// of the same listing run one after the other; distinct listings run in
// parallel.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[uuid.UUID]*sync.Mutex{}}
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (h *valuationServiceHandler) loadRuleSnapshot() (*domain.RuleSnapshot, error) {
	rules, err := h.ValuationRuleRepository.ListActive()
	if err != nil {
		return nil, err
	}
	groups, err := h.ValuationRuleRepository.ListGroups()
	if err != nil {
		return nil, err
	}
	profile, err := h.ScoringProfileRepository.GetDefault()
	if err != nil {
		return nil, err
	}

	return &domain.RuleSnapshot{
		Rules:   rules,
		Groups:  groups,
		Profile: *profile,
	}, nil
}

func (h *valuationServiceHandler) Revalue(ctx context.Context, listingID uuid.UUID) (*domain.ValuationBreakdown, error) {
	ruleSnapshot, err := h.loadRuleSnapshot()
	if err != nil {
		return nil, err
	}

	return h.revalueWithSnapshot(ctx, listingID, ruleSnapshot)
}

func (h *valuationServiceHandler) revalueWithSnapshot(ctx context.Context, listingID uuid.UUID, ruleSnapshot *domain.RuleSnapshot) (*domain.ValuationBreakdown, error) {
	unlock := h.listingLocks.lock(listingID)
	defer unlock()

	profile := domain.GetProfile(ctx)
	_, endSpan := profile.StartNewSpan("load listing " + listingID.String())

	listing, err := h.ListingRepository.Get(listingID)
	if err != nil {
		return nil, err
	}

	components, err := h.ComponentRepository.GetMany(domain.ComponentRefs{
		CPUID:            listing.CpuID,
		GPUID:            listing.GpuID,
		RAMSpecID:        listing.RamSpecID,
		StorageProfileID: listing.StorageProfileID,
	}.All())
	if err != nil {
		return nil, err
	}

	snapshot, err := repository.ListingToSnapshot(*listing, components)
	if err != nil {
		return nil, err
	}

	endSpan()
	_, endSpan = profile.StartNewSpan("score listing " + listingID.String())

	matched := calculator.EvaluateRules(*snapshot, ruleSnapshot.Rules)
	agg, err := calculator.Aggregate(matched, ruleSnapshot.Groups, ruleSnapshot.Profile, snapshot.RawPrice)
	if err != nil {
		return nil, err
	}

	cohortDollarPerMark, err := h.ListingRepository.GetCohortDollarPerMark(listing.CpuID)
	if err != nil {
		return nil, err
	}
	metrics := calculator.DeriveMetrics(calculator.DeriveMetricsInput{
		AdjustedPrice:       agg.AdjustedPrice,
		Marks:               snapshot.Marks,
		DimensionWeights:    ruleSnapshot.Profile.DimensionWeights,
		CohortDollarPerMark: cohortDollarPerMark,
	})

	cohortPrices, err := h.ListingRepository.GetCohortAdjustedPrices(listing.CpuID, listingID)
	if err != nil {
		return nil, err
	}
	target := calculator.AnalyzePriceTargets(cohortPrices)

	breakdown := domain.ValuationBreakdown{
		BreakdownID:       uuid.New(),
		ListingID:         listingID,
		ListingPrice:      snapshot.RawPrice,
		AdjustedPrice:     agg.AdjustedPrice,
		TotalAdjustment:   agg.TotalAdjustment,
		MatchedRulesCount: agg.MatchedRulesCount,
		Clamped:           agg.Clamped,
		Adjustments:       agg.Adjustments,
		ComputedAt:        time.Now().UTC(),
	}

	endSpan()
	_, endSpan = profile.StartNewSpan("persist listing " + listingID.String())
	defer endSpan()

	err = h.persistValuation(ctx, breakdown, metrics, target)
	if err != nil {
		return nil, err
	}

	if agg.Clamped {
		logger.FromContext(ctx).Warnf(
			"listing %s clamped to zero: raw %s, total adjustment %s",
			listingID.String(), snapshot.RawPrice.String(), agg.TotalAdjustment.String(),
		)
	}

	return &breakdown, nil
}

const (
	persistAttempts = 3
	persistBackoff  = 250 * time.Millisecond
)

// persistValuation writes the breakdown and listing fields atomically.
// Store errors are retried a few times before giving up; readers never
// observe a new breakdown paired with old listing fields.
func (h *valuationServiceHandler) persistValuation(ctx context.Context, breakdown domain.ValuationBreakdown, metrics domain.DerivedMetrics, target *domain.PriceTarget) error {
	fields := repository.ListingValuationFields{
		AdjustedPrice:       breakdown.AdjustedPrice,
		DollarPerMarkSingle: dollarPerMark(metrics, domain.DimensionSingleThread),
		DollarPerMarkMulti:  dollarPerMark(metrics, domain.DimensionMultiThread),
		Rating:              metrics.Rating,
		PriceTarget:         target,
		BreakdownID:         breakdown.BreakdownID,
	}

	var err error
	for attempt := 0; attempt < persistAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(persistBackoff * time.Duration(attempt)):
			}
		}

		err = h.persistOnce(breakdown, fields)
		if err == nil {
			return nil
		}
		logger.FromContext(ctx).Warnf("persist attempt %d for listing %s: %s", attempt+1, breakdown.ListingID.String(), err.Error())
	}

	return fmt.Errorf("failed to persist valuation for listing %s: %w", breakdown.ListingID.String(), err)
}

func (h *valuationServiceHandler) persistOnce(breakdown domain.ValuationBreakdown, fields repository.ListingValuationFields) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = h.ValuationBreakdownRepository.Replace(tx, breakdown)
	if err != nil {
		return err
	}
	err = h.ListingRepository.UpdateValuation(tx, breakdown.ListingID, fields)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func dollarPerMark(metrics domain.DerivedMetrics, dim domain.BenchmarkDimension) *decimal.Decimal {
	value, ok := metrics.DollarPerMark[dim]
	if !ok {
		return nil
	}
	return &value
}

func (h *valuationServiceHandler) RevalueMany(ctx context.Context, listingIDs []uuid.UUID) (*BulkRevalueResult, error) {
	ruleSnapshot, err := h.loadRuleSnapshot()
	if err != nil {
		return nil, err
	}

	return h.revalueManyWithSnapshot(ctx, listingIDs, ruleSnapshot)
}

func (h *valuationServiceHandler) revalueManyWithSnapshot(ctx context.Context, listingIDs []uuid.UUID, ruleSnapshot *domain.RuleSnapshot) (*BulkRevalueResult, error) {
	numGoroutines := 10

	// spans are not thread safe, so the pool gets one coarse span and the
	// workers run without a profile in ctx
	_, endSpan := domain.GetProfile(ctx).StartNewSpan(fmt.Sprintf("revalue %d listings", len(listingIDs)))
	defer endSpan()
	workerCtx := context.WithValue(ctx, domain.ContextProfileKey, (*domain.Profile)(nil))

	inputCh := make(chan uuid.UUID, len(listingIDs))

	var wg sync.WaitGroup
	for _, id := range listingIDs {
		wg.Add(1)
		inputCh <- id
	}
	close(inputCh)

	var resultMu sync.Mutex
	result := BulkRevalueResult{Errors: map[uuid.UUID]string{}}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for listingID := range inputCh {
				// every queued listing must be received and marked done or
				// Wait never returns; after cancellation items are drained
				// without being processed
				if ctx.Err() != nil {
					wg.Done()
					continue
				}

				_, err := h.revalueWithSnapshot(workerCtx, listingID, ruleSnapshot)

				resultMu.Lock()
				if err != nil {
					result.Failed++
					result.Errors[listingID] = err.Error()
				} else {
					result.Succeeded++
				}
				resultMu.Unlock()
				wg.Done()
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("bulk revalue done: %d succeeded, %d failed", result.Succeeded, result.Failed)

	return &result, nil
}

func (h *valuationServiceHandler) RevalueComponent(ctx context.Context, componentID uuid.UUID) (*BulkRevalueResult, error) {
	listings, err := h.ListingRepository.List(repository.ListingListFilter{
		ComponentID: &componentID,
	})
	if err != nil {
		return nil, err
	}

	ruleSnapshot, err := h.loadRuleSnapshot()
	if err != nil {
		return nil, err
	}

	return h.revalueManyWithSnapshot(ctx, listingIDs(listings), ruleSnapshot)
}

func (h *valuationServiceHandler) RevalueAll(ctx context.Context) (*BulkRevalueResult, error) {
	listings, err := h.ListingRepository.List(repository.ListingListFilter{})
	if err != nil {
		return nil, err
	}

	// one rule snapshot for the whole pass, so every listing is scored
	// against the same configuration
	ruleSnapshot, err := h.loadRuleSnapshot()
	if err != nil {
		return nil, err
	}

	return h.revalueManyWithSnapshot(ctx, listingIDs(listings), ruleSnapshot)
}

func listingIDs(listings []model.Listing) []uuid.UUID {
	ids := []uuid.UUID{}
	for _, l := range listings {
		ids = append(ids, l.ListingID)
	}
	return ids
}
