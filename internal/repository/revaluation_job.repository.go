package repository

import (
	"database/sql"
	"fmt"
	"time"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type RevaluationJobRepository interface {
	Add(tx *sql.Tx, job model.RevaluationJob) (*model.RevaluationJob, error)
	ListPending(limit int64) ([]model.RevaluationJob, error)
	// MarkProcessing bumps the attempt counter alongside the status change.
	MarkProcessing(tx *sql.Tx, id uuid.UUID) error
	MarkCompleted(tx *sql.Tx, id uuid.UUID) error
	MarkFailed(tx *sql.Tx, id uuid.UUID) error
}

type revaluationJobRepositoryHandler struct {
	Db *sql.DB
}

func NewRevaluationJobRepository(db *sql.DB) RevaluationJobRepository {
	return revaluationJobRepositoryHandler{Db: db}
}

func (h revaluationJobRepositoryHandler) Add(tx *sql.Tx, job model.RevaluationJob) (*model.RevaluationJob, error) {
	job.Status = string(domain.JobPending)
	job.CreatedAt = time.Now().UTC()
	job.ModifiedAt = job.CreatedAt

	query := table.RevaluationJob.
		INSERT(table.RevaluationJob.MutableColumns).
		MODEL(job).
		RETURNING(table.RevaluationJob.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RevaluationJob{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue revaluation job: %w", err)
	}

	return &out, nil
}

func (h revaluationJobRepositoryHandler) ListPending(limit int64) ([]model.RevaluationJob, error) {
	query := table.RevaluationJob.
		SELECT(table.RevaluationJob.AllColumns).
		WHERE(table.RevaluationJob.Status.EQ(postgres.String(string(domain.JobPending)))).
		ORDER_BY(table.RevaluationJob.CreatedAt.ASC()).
		LIMIT(limit)

	results := []model.RevaluationJob{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending revaluation jobs: %w", err)
	}

	return results, nil
}

func (h revaluationJobRepositoryHandler) MarkProcessing(tx *sql.Tx, id uuid.UUID) error {
	query := table.RevaluationJob.
		UPDATE(table.RevaluationJob.Status, table.RevaluationJob.Attempts, table.RevaluationJob.ModifiedAt).
		SET(
			postgres.String(string(domain.JobProcessing)),
			table.RevaluationJob.Attempts.ADD(postgres.Int32(1)),
			postgres.TimestampT(time.Now().UTC()),
		).
		WHERE(table.RevaluationJob.JobID.EQ(postgres.UUID(id)))

	return h.exec(tx, query, id, domain.JobProcessing)
}

func (h revaluationJobRepositoryHandler) MarkCompleted(tx *sql.Tx, id uuid.UUID) error {
	return h.setStatus(tx, id, domain.JobCompleted)
}

func (h revaluationJobRepositoryHandler) MarkFailed(tx *sql.Tx, id uuid.UUID) error {
	return h.setStatus(tx, id, domain.JobFailed)
}

func (h revaluationJobRepositoryHandler) setStatus(tx *sql.Tx, id uuid.UUID, status domain.RevaluationJobStatus) error {
	query := table.RevaluationJob.
		UPDATE(table.RevaluationJob.Status, table.RevaluationJob.ModifiedAt).
		SET(
			postgres.String(string(status)),
			postgres.TimestampT(time.Now().UTC()),
		).
		WHERE(table.RevaluationJob.JobID.EQ(postgres.UUID(id)))

	return h.exec(tx, query, id, status)
}

func (h revaluationJobRepositoryHandler) exec(tx *sql.Tx, query postgres.UpdateStatement, id uuid.UUID, status domain.RevaluationJobStatus) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to mark job %s %s: %w", id.String(), status, err)
	}

	return nil
}
