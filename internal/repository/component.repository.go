package repository

import (
	"database/sql"
	"fmt"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ComponentRepository interface {
	Get(id uuid.UUID) (*domain.ComponentSpec, error)
	GetMany(ids []uuid.UUID) ([]domain.ComponentSpec, error)
}

type componentRepositoryHandler struct {
	Db *sql.DB
}

func NewComponentRepository(db *sql.DB) ComponentRepository {
	return componentRepositoryHandler{Db: db}
}

func (h componentRepositoryHandler) Get(id uuid.UUID) (*domain.ComponentSpec, error) {
	query := table.ComponentSpec.
		SELECT(table.ComponentSpec.AllColumns).
		WHERE(table.ComponentSpec.ComponentID.EQ(postgres.UUID(id)))

	result := model.ComponentSpec{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get component %s: %w", id.String(), err)
	}

	spec := componentToDomain(result)

	return &spec, nil
}

func (h componentRepositoryHandler) GetMany(ids []uuid.UUID) ([]domain.ComponentSpec, error) {
	if len(ids) == 0 {
		return []domain.ComponentSpec{}, nil
	}

	expressions := []postgres.Expression{}
	for _, id := range ids {
		expressions = append(expressions, postgres.UUID(id))
	}

	query := table.ComponentSpec.
		SELECT(table.ComponentSpec.AllColumns).
		WHERE(table.ComponentSpec.ComponentID.IN(expressions...))

	results := []model.ComponentSpec{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get %d components: %w", len(ids), err)
	}
	if len(results) != len(ids) {
		return nil, fmt.Errorf("expected %d components but found %d", len(ids), len(results))
	}

	out := []domain.ComponentSpec{}
	for _, result := range results {
		out = append(out, componentToDomain(result))
	}

	return out, nil
}

func componentToDomain(m model.ComponentSpec) domain.ComponentSpec {
	marks := map[domain.BenchmarkDimension]float64{}
	setMark := func(dim domain.BenchmarkDimension, value *float64) {
		if value != nil {
			marks[dim] = *value
		}
	}
	setMark(domain.DimensionSingleThread, m.MarkSingleThread)
	setMark(domain.DimensionMultiThread, m.MarkMultiThread)
	setMark(domain.Dimension3DGraphics, m.Mark3dGraphics)
	setMark(domain.DimensionMemory, m.MarkMemory)
	setMark(domain.DimensionDisk, m.MarkDisk)

	return domain.ComponentSpec{
		ComponentID: m.ComponentID,
		Kind:        domain.ComponentKind(m.Kind),
		Name:        m.Name,
		Marks:       marks,
	}
}
