package app

import (
	"context"
	"database/sql"
	"fmt"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/domain"
	"rigvalue/internal/logger"
	"rigvalue/internal/repository"
	"rigvalue/internal/service"

	"github.com/google/uuid"
)

// RevaluerHandler reacts to catalog changes. Each trigger marks the
// affected listings stale and enqueues a revaluation job in the same
// transaction, so a crash between the two never strands a stale listing
// with no queued recompute.
type RevaluerHandler struct {
	Db                       *sql.DB
	ValuationService         service.ValuationService
	ListingRepository        repository.ListingRepository
	RevaluationJobRepository repository.RevaluationJobRepository
}

func (h RevaluerHandler) OnRuleChanged(ctx context.Context) error {
	return h.markStaleAndEnqueue(ctx, domain.RevaluationScope{Kind: domain.ScopeAll}, domain.ReasonRuleChanged)
}

func (h RevaluerHandler) OnProfileChanged(ctx context.Context) error {
	return h.markStaleAndEnqueue(ctx, domain.RevaluationScope{Kind: domain.ScopeAll}, domain.ReasonProfileChanged)
}

func (h RevaluerHandler) OnComponentBenchmarkUpdated(ctx context.Context, componentID uuid.UUID) error {
	return h.markStaleAndEnqueue(ctx, domain.RevaluationScope{
		Kind: domain.ScopeComponent,
		ID:   &componentID,
	}, domain.ReasonBenchmarkUpdated)
}

func (h RevaluerHandler) OnListingPriceChanged(ctx context.Context, listingID uuid.UUID) error {
	return h.markStaleAndEnqueue(ctx, domain.RevaluationScope{
		Kind: domain.ScopeListing,
		ID:   &listingID,
	}, domain.ReasonPriceChanged)
}

func (h RevaluerHandler) markStaleAndEnqueue(ctx context.Context, scope domain.RevaluationScope, reason domain.RevaluationReason) error {
	listingIDs, err := h.resolveScope(scope)
	if err != nil {
		return err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.ListingRepository.SetStatus(tx, listingIDs, domain.StatusStale)
	if err != nil {
		return err
	}

	job := model.RevaluationJob{
		ScopeKind: string(scope.Kind),
		ScopeID:   scope.ID,
		Reason:    string(reason),
	}
	_, err = h.RevaluationJobRepository.Add(tx, job)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infof("marked %d listings stale (%s) and enqueued %s job", len(listingIDs), reason, scope.Kind)

	return nil
}

func (h RevaluerHandler) resolveScope(scope domain.RevaluationScope) ([]uuid.UUID, error) {
	switch scope.Kind {
	case domain.ScopeListing:
		if scope.ID == nil {
			return nil, fmt.Errorf("listing scope requires an id")
		}
		return []uuid.UUID{*scope.ID}, nil
	case domain.ScopeComponent:
		if scope.ID == nil {
			return nil, fmt.Errorf("component scope requires an id")
		}
		listings, err := h.ListingRepository.List(repository.ListingListFilter{ComponentID: scope.ID})
		if err != nil {
			return nil, err
		}
		return modelListingIDs(listings), nil
	case domain.ScopeAll:
		listings, err := h.ListingRepository.List(repository.ListingListFilter{})
		if err != nil {
			return nil, err
		}
		return modelListingIDs(listings), nil
	}

	return nil, fmt.Errorf("unknown revaluation scope %q", scope.Kind)
}

func modelListingIDs(listings []model.Listing) []uuid.UUID {
	ids := []uuid.UUID{}
	for _, l := range listings {
		ids = append(ids, l.ListingID)
	}
	return ids
}

// ProcessQueue drains pending jobs oldest first. A job that fails is
// marked failed and left for inspection; it does not poison the rest of
// the queue.
func (h RevaluerHandler) ProcessQueue(ctx context.Context, limit int64) error {
	jobs, err := h.RevaluationJobRepository.ListPending(limit)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		err = h.RevaluationJobRepository.MarkProcessing(nil, job.JobID)
		if err != nil {
			return err
		}

		err = h.runJob(ctx, job)
		if err != nil {
			log.Errorf("revaluation job %s failed: %s", job.JobID.String(), err.Error())
			if markErr := h.RevaluationJobRepository.MarkFailed(nil, job.JobID); markErr != nil {
				return markErr
			}
			continue
		}

		err = h.RevaluationJobRepository.MarkCompleted(nil, job.JobID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (h RevaluerHandler) runJob(ctx context.Context, job model.RevaluationJob) error {
	switch domain.RevaluationScopeKind(job.ScopeKind) {
	case domain.ScopeListing:
		if job.ScopeID == nil {
			return fmt.Errorf("listing job %s has no scope id", job.JobID.String())
		}
		_, err := h.ValuationService.Revalue(ctx, *job.ScopeID)
		return err
	case domain.ScopeComponent:
		if job.ScopeID == nil {
			return fmt.Errorf("component job %s has no scope id", job.JobID.String())
		}
		result, err := h.ValuationService.RevalueComponent(ctx, *job.ScopeID)
		return bulkResultError(result, err)
	case domain.ScopeAll:
		result, err := h.ValuationService.RevalueAll(ctx)
		return bulkResultError(result, err)
	}

	return fmt.Errorf("job %s has unknown scope kind %q", job.JobID.String(), job.ScopeKind)
}

func bulkResultError(result *service.BulkRevalueResult, err error) error {
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d listings failed to revalue", result.Failed, result.Failed+result.Succeeded)
	}
	return nil
}
