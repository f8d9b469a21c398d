package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ScoringProfileRepository interface {
	Get(id uuid.UUID) (*domain.ScoringProfile, error)
	// GetDefault requires exactly one default profile. Zero or multiple
	// defaults is a configuration error, not a silent pick.
	GetDefault() (*domain.ScoringProfile, error)
}

type scoringProfileRepositoryHandler struct {
	Db *sql.DB
}

func NewScoringProfileRepository(db *sql.DB) ScoringProfileRepository {
	return scoringProfileRepositoryHandler{Db: db}
}

func (h scoringProfileRepositoryHandler) Get(id uuid.UUID) (*domain.ScoringProfile, error) {
	query := table.ScoringProfile.
		SELECT(table.ScoringProfile.AllColumns).
		WHERE(table.ScoringProfile.ProfileID.EQ(postgres.UUID(id)))

	result := model.ScoringProfile{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoring profile %s: %w", id.String(), err)
	}

	return profileToDomain(result)
}

func (h scoringProfileRepositoryHandler) GetDefault() (*domain.ScoringProfile, error) {
	query := table.ScoringProfile.
		SELECT(table.ScoringProfile.AllColumns).
		WHERE(table.ScoringProfile.IsDefault.IS_TRUE())

	results := []model.ScoringProfile{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get default scoring profile: %w", err)
	}

	if len(results) == 0 {
		return nil, domain.NewConfigurationError("no default scoring profile configured")
	}
	if len(results) > 1 {
		return nil, domain.NewConfigurationError("%d scoring profiles are marked default, expected exactly one", len(results))
	}

	return profileToDomain(results[0])
}

func profileToDomain(m model.ScoringProfile) (*domain.ScoringProfile, error) {
	profile := domain.ScoringProfile{
		ProfileID:        m.ProfileID,
		Name:             m.Name,
		IsDefault:        m.IsDefault,
		RuleGroupWeights: map[uuid.UUID]decimal.Decimal{},
		DimensionWeights: map[domain.BenchmarkDimension]decimal.Decimal{},
	}

	if m.RuleGroupWeights != "" {
		raw := map[string]decimal.Decimal{}
		if err := json.Unmarshal([]byte(m.RuleGroupWeights), &raw); err != nil {
			return nil, fmt.Errorf("failed to decode group weights of profile %s: %w", m.ProfileID.String(), err)
		}
		for key, weight := range raw {
			groupID, err := uuid.Parse(key)
			if err != nil {
				return nil, domain.NewConfigurationError("profile %s has malformed group id %q", m.ProfileID.String(), key)
			}
			profile.RuleGroupWeights[groupID] = weight
		}
	}

	if m.DimensionWeights != "" {
		raw := map[domain.BenchmarkDimension]decimal.Decimal{}
		if err := json.Unmarshal([]byte(m.DimensionWeights), &raw); err != nil {
			return nil, fmt.Errorf("failed to decode dimension weights of profile %s: %w", m.ProfileID.String(), err)
		}
		profile.DimensionWeights = raw
	}

	return &profile, nil
}
