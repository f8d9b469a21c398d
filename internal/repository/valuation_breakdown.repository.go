package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rigvalue/internal/db/models/postgres/public/model"
	"rigvalue/internal/db/models/postgres/public/table"
	"rigvalue/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValuationBreakdownRepository interface {
	// Replace removes any prior breakdown for the listing and inserts the
	// new one. Exactly one breakdown per listing survives a revalue.
	Replace(tx *sql.Tx, breakdown domain.ValuationBreakdown) (*model.ValuationBreakdown, error)
	GetByListingID(listingID uuid.UUID) (*domain.ValuationBreakdown, error)
}

type valuationBreakdownRepositoryHandler struct {
	Db *sql.DB
}

func NewValuationBreakdownRepository(db *sql.DB) ValuationBreakdownRepository {
	return valuationBreakdownRepositoryHandler{Db: db}
}

func (h valuationBreakdownRepositoryHandler) Replace(tx *sql.Tx, breakdown domain.ValuationBreakdown) (*model.ValuationBreakdown, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	deleteQuery := table.ValuationBreakdown.
		DELETE().
		WHERE(table.ValuationBreakdown.ListingID.EQ(postgres.UUID(breakdown.ListingID)))

	_, err := deleteQuery.Exec(db)
	if err != nil {
		return nil, fmt.Errorf("failed to delete prior breakdown for listing %s: %w", breakdown.ListingID.String(), err)
	}

	adjustments, err := json.Marshal(breakdown.Adjustments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode adjustments for listing %s: %w", breakdown.ListingID.String(), err)
	}

	// money columns are float-typed; every stored amount is already
	// rounded to the cent, which float64 represents exactly at listing
	// magnitudes, so the decimal round-trip is lossless
	row := model.ValuationBreakdown{
		BreakdownID:       breakdown.BreakdownID,
		ListingID:         breakdown.ListingID,
		ListingPrice:      breakdown.ListingPrice.InexactFloat64(),
		AdjustedPrice:     breakdown.AdjustedPrice.InexactFloat64(),
		TotalAdjustment:   breakdown.TotalAdjustment.InexactFloat64(),
		MatchedRulesCount: int32(breakdown.MatchedRulesCount),
		Clamped:           breakdown.Clamped,
		Adjustments:       string(adjustments),
		ComputedAt:        breakdown.ComputedAt,
		CreatedAt:         time.Now().UTC(),
	}

	// the caller pre-generates the breakdown id so the listing row can
	// reference it in the same transaction
	insertQuery := table.ValuationBreakdown.
		INSERT(table.ValuationBreakdown.AllColumns).
		MODEL(row).
		RETURNING(table.ValuationBreakdown.AllColumns)

	out := model.ValuationBreakdown{}
	err = insertQuery.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert breakdown for listing %s: %w", breakdown.ListingID.String(), err)
	}

	return &out, nil
}

func (h valuationBreakdownRepositoryHandler) GetByListingID(listingID uuid.UUID) (*domain.ValuationBreakdown, error) {
	query := table.ValuationBreakdown.
		SELECT(table.ValuationBreakdown.AllColumns).
		WHERE(table.ValuationBreakdown.ListingID.EQ(postgres.UUID(listingID)))

	result := model.ValuationBreakdown{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get breakdown for listing %s: %w", listingID.String(), err)
	}

	return breakdownToDomain(result)
}

func breakdownToDomain(m model.ValuationBreakdown) (*domain.ValuationBreakdown, error) {
	adjustments := []domain.RuleAdjustment{}
	if m.Adjustments != "" {
		if err := json.Unmarshal([]byte(m.Adjustments), &adjustments); err != nil {
			return nil, fmt.Errorf("failed to decode adjustments of breakdown %s: %w", m.BreakdownID.String(), err)
		}
	}

	return &domain.ValuationBreakdown{
		BreakdownID:       m.BreakdownID,
		ListingID:         m.ListingID,
		ListingPrice:      decimal.NewFromFloat(m.ListingPrice),
		AdjustedPrice:     decimal.NewFromFloat(m.AdjustedPrice),
		TotalAdjustment:   decimal.NewFromFloat(m.TotalAdjustment),
		MatchedRulesCount: int(m.MatchedRulesCount),
		Clamped:           m.Clamped,
		Adjustments:       adjustments,
		ComputedAt:        m.ComputedAt,
	}, nil
}
