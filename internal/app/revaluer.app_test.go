package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/domain"
	mock_repository "rigvalue/internal/repository/mocks"
	"rigvalue/internal/service"
	mock_service "rigvalue/internal/service/mocks"
	"rigvalue/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_RevaluerHandler_triggers(t *testing.T) {
	t.Run("price change marks the listing stale and enqueues a job", func(t *testing.T) {
		db, err := util.NewTestDb()
		require.NoError(t, err)
		if err := db.Ping(); err != nil {
			t.Skipf("test db not available: %s", err)
		}

		ctrl := gomock.NewController(t)
		listingRepository := mock_repository.NewMockListingRepository(ctrl)
		jobRepository := mock_repository.NewMockRevaluationJobRepository(ctrl)

		handler := RevaluerHandler{
			Db:                       db,
			ListingRepository:        listingRepository,
			RevaluationJobRepository: jobRepository,
		}

		listingID := uuid.New()
		listingRepository.EXPECT().
			SetStatus(gomock.Any(), []uuid.UUID{listingID}, domain.StatusStale).
			Return(nil)

		var enqueued model.RevaluationJob
		jobRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, job model.RevaluationJob) (*model.RevaluationJob, error) {
				enqueued = job
				return &job, nil
			})

		err = handler.OnListingPriceChanged(context.Background(), listingID)
		require.NoError(t, err)

		require.Equal(t, string(domain.ScopeListing), enqueued.ScopeKind)
		require.Equal(t, string(domain.ReasonPriceChanged), enqueued.Reason)
		require.NotNil(t, enqueued.ScopeID)
		require.Equal(t, listingID, *enqueued.ScopeID)
	})

	t.Run("benchmark update fans out to every listing with the component", func(t *testing.T) {
		db, err := util.NewTestDb()
		require.NoError(t, err)
		if err := db.Ping(); err != nil {
			t.Skipf("test db not available: %s", err)
		}

		ctrl := gomock.NewController(t)
		listingRepository := mock_repository.NewMockListingRepository(ctrl)
		jobRepository := mock_repository.NewMockRevaluationJobRepository(ctrl)

		handler := RevaluerHandler{
			Db:                       db,
			ListingRepository:        listingRepository,
			RevaluationJobRepository: jobRepository,
		}

		componentID := uuid.New()
		a := model.Listing{ListingID: uuid.New(), CpuID: componentID}
		b := model.Listing{ListingID: uuid.New(), CpuID: componentID}

		listingRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Listing{a, b}, nil)
		listingRepository.EXPECT().
			SetStatus(gomock.Any(), []uuid.UUID{a.ListingID, b.ListingID}, domain.StatusStale).
			Return(nil)
		jobRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(&model.RevaluationJob{}, nil)

		err = handler.OnComponentBenchmarkUpdated(context.Background(), componentID)
		require.NoError(t, err)
	})
}

func Test_RevaluerHandler_ProcessQueue(t *testing.T) {
	t.Run("dispatches jobs by scope and marks outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobRepository := mock_repository.NewMockRevaluationJobRepository(ctrl)
		valuationService := mock_service.NewMockValuationService(ctrl)

		handler := RevaluerHandler{
			ValuationService:         valuationService,
			RevaluationJobRepository: jobRepository,
		}

		listingID := uuid.New()
		listingJob := model.RevaluationJob{
			JobID:     uuid.New(),
			ScopeKind: string(domain.ScopeListing),
			ScopeID:   &listingID,
			Reason:    string(domain.ReasonPriceChanged),
		}
		allJob := model.RevaluationJob{
			JobID:     uuid.New(),
			ScopeKind: string(domain.ScopeAll),
			Reason:    string(domain.ReasonRuleChanged),
		}

		jobRepository.EXPECT().ListPending(int64(50)).Return([]model.RevaluationJob{listingJob, allJob}, nil)

		jobRepository.EXPECT().MarkProcessing(nil, listingJob.JobID).Return(nil)
		valuationService.EXPECT().Revalue(gomock.Any(), listingID).Return(&domain.ValuationBreakdown{}, nil)
		jobRepository.EXPECT().MarkCompleted(nil, listingJob.JobID).Return(nil)

		jobRepository.EXPECT().MarkProcessing(nil, allJob.JobID).Return(nil)
		valuationService.EXPECT().RevalueAll(gomock.Any()).Return(&service.BulkRevalueResult{Succeeded: 3}, nil)
		jobRepository.EXPECT().MarkCompleted(nil, allJob.JobID).Return(nil)

		err := handler.ProcessQueue(context.Background(), 50)
		require.NoError(t, err)
	})

	t.Run("a failing job is marked failed and the queue keeps draining", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobRepository := mock_repository.NewMockRevaluationJobRepository(ctrl)
		valuationService := mock_service.NewMockValuationService(ctrl)

		handler := RevaluerHandler{
			ValuationService:         valuationService,
			RevaluationJobRepository: jobRepository,
		}

		badID := uuid.New()
		goodID := uuid.New()
		bad := model.RevaluationJob{JobID: uuid.New(), ScopeKind: string(domain.ScopeListing), ScopeID: &badID}
		good := model.RevaluationJob{JobID: uuid.New(), ScopeKind: string(domain.ScopeListing), ScopeID: &goodID}

		jobRepository.EXPECT().ListPending(int64(10)).Return([]model.RevaluationJob{bad, good}, nil)

		jobRepository.EXPECT().MarkProcessing(nil, bad.JobID).Return(nil)
		valuationService.EXPECT().Revalue(gomock.Any(), badID).Return(nil, errors.New("boom"))
		jobRepository.EXPECT().MarkFailed(nil, bad.JobID).Return(nil)

		jobRepository.EXPECT().MarkProcessing(nil, good.JobID).Return(nil)
		valuationService.EXPECT().Revalue(gomock.Any(), goodID).Return(&domain.ValuationBreakdown{}, nil)
		jobRepository.EXPECT().MarkCompleted(nil, good.JobID).Return(nil)

		err := handler.ProcessQueue(context.Background(), 10)
		require.NoError(t, err)
	})
}
