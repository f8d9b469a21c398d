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

type ListingListFilter struct {
	ComponentID *uuid.UUID
	Status      *domain.ValuationStatus
}

// ListingValuationFields is everything one revalue pass denormalizes onto
// the listing row. Written together with the breakdown replacement in the
// same transaction.
type ListingValuationFields struct {
	AdjustedPrice       decimal.Decimal
	DollarPerMarkSingle *decimal.Decimal
	DollarPerMarkMulti  *decimal.Decimal
	Rating              domain.ValueRating
	PriceTarget         *domain.PriceTarget
	BreakdownID         uuid.UUID
}

type ListingRepository interface {
	Get(id uuid.UUID) (*model.Listing, error)
	List(filter ListingListFilter) ([]model.Listing, error)
	UpdateValuation(tx *sql.Tx, listingID uuid.UUID, fields ListingValuationFields) error
	SetStatus(tx *sql.Tx, listingIDs []uuid.UUID, status domain.ValuationStatus) error

	// GetCohortAdjustedPrices returns the adjusted prices of valued
	// listings sharing the cpu, excluding the given listing so a
	// recompute never compares a listing against itself.
	GetCohortAdjustedPrices(cpuID uuid.UUID, excludeListingID uuid.UUID) ([]decimal.Decimal, error)

	// GetCohortDollarPerMark returns the primary-dimension dollar-per-mark
	// values of every valued listing sharing the cpu.
	GetCohortDollarPerMark(cpuID uuid.UUID) ([]float64, error)
}

type listingRepositoryHandler struct {
	Db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return listingRepositoryHandler{Db: db}
}

func (h listingRepositoryHandler) Get(id uuid.UUID) (*model.Listing, error) {
	query := table.Listing.
		SELECT(table.Listing.AllColumns).
		WHERE(table.Listing.ListingID.EQ(postgres.UUID(id)))

	result := model.Listing{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id.String(), err)
	}

	return &result, nil
}

func (h listingRepositoryHandler) List(filter ListingListFilter) ([]model.Listing, error) {
	expressions := []postgres.BoolExpression{}
	if filter.ComponentID != nil {
		expressions = append(expressions, table.Listing.CpuID.EQ(postgres.UUID(*filter.ComponentID)))
	}
	if filter.Status != nil {
		expressions = append(expressions, table.Listing.ValuationStatus.EQ(postgres.String(string(*filter.Status))))
	}

	query := table.Listing.SELECT(table.Listing.AllColumns)
	if len(expressions) > 0 {
		query = query.WHERE(postgres.AND(expressions...))
	}

	result := []model.Listing{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	return result, nil
}

func (h listingRepositoryHandler) UpdateValuation(tx *sql.Tx, listingID uuid.UUID, fields ListingValuationFields) error {
	// cent-rounded amounts round-trip float columns losslessly at listing
	// magnitudes
	adjustedPrice := fields.AdjustedPrice.InexactFloat64()
	status := string(domain.StatusValued)
	breakdownID := fields.BreakdownID

	listing := model.Listing{
		AdjustedPrice:        &adjustedPrice,
		DollarPerMarkSingle:  decimalPtrToFloatPtr(fields.DollarPerMarkSingle),
		DollarPerMarkMulti:   decimalPtrToFloatPtr(fields.DollarPerMarkMulti),
		ValuationBreakdownID: &breakdownID,
		ValuationStatus:      status,
		UpdatedAt:            time.Now().UTC(),
	}
	if fields.Rating != "" {
		rating := string(fields.Rating)
		listing.PerformanceValueRating = &rating
	}
	if pt := fields.PriceTarget; pt != nil {
		great := pt.Great.InexactFloat64()
		good := pt.Good.InexactFloat64()
		fair := pt.Fair.InexactFloat64()
		confidence := string(pt.Confidence)
		sampleSize := int32(pt.SampleSize)
		listing.PriceTargetGreat = &great
		listing.PriceTargetGood = &good
		listing.PriceTargetFair = &fair
		listing.PriceTargetConfidence = &confidence
		listing.PriceTargetSampleSize = &sampleSize
	}

	query := table.Listing.
		UPDATE(
			table.Listing.AdjustedPrice,
			table.Listing.DollarPerMarkSingle,
			table.Listing.DollarPerMarkMulti,
			table.Listing.PerformanceValueRating,
			table.Listing.PriceTargetGreat,
			table.Listing.PriceTargetGood,
			table.Listing.PriceTargetFair,
			table.Listing.PriceTargetConfidence,
			table.Listing.PriceTargetSampleSize,
			table.Listing.ValuationBreakdownID,
			table.Listing.ValuationStatus,
			table.Listing.UpdatedAt,
		).
		MODEL(listing).
		WHERE(table.Listing.ListingID.EQ(postgres.UUID(listingID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update listing %s valuation: %w", listingID.String(), err)
	}

	return nil
}

func (h listingRepositoryHandler) SetStatus(tx *sql.Tx, listingIDs []uuid.UUID, status domain.ValuationStatus) error {
	if len(listingIDs) == 0 {
		return nil
	}

	ids := []postgres.Expression{}
	for _, id := range listingIDs {
		ids = append(ids, postgres.UUID(id))
	}

	query := table.Listing.
		UPDATE(table.Listing.ValuationStatus, table.Listing.UpdatedAt).
		SET(postgres.String(string(status)), postgres.TimestampT(time.Now().UTC())).
		WHERE(table.Listing.ListingID.IN(ids...))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to set status %s on %d listings: %w", status, len(listingIDs), err)
	}

	return nil
}

func (h listingRepositoryHandler) GetCohortAdjustedPrices(cpuID uuid.UUID, excludeListingID uuid.UUID) ([]decimal.Decimal, error) {
	query := table.Listing.
		SELECT(table.Listing.AllColumns).
		WHERE(postgres.AND(
			table.Listing.CpuID.EQ(postgres.UUID(cpuID)),
			table.Listing.ListingID.NOT_EQ(postgres.UUID(excludeListingID)),
			table.Listing.ValuationStatus.NOT_EQ(postgres.String(string(domain.StatusUnvalued))),
			table.Listing.AdjustedPrice.IS_NOT_NULL(),
		))

	rows := []model.Listing{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort prices for component %s: %w", cpuID.String(), err)
	}

	prices := []decimal.Decimal{}
	for _, row := range rows {
		if row.AdjustedPrice == nil {
			continue
		}
		prices = append(prices, decimal.NewFromFloat(*row.AdjustedPrice))
	}

	return prices, nil
}

func (h listingRepositoryHandler) GetCohortDollarPerMark(cpuID uuid.UUID) ([]float64, error) {
	query := table.Listing.
		SELECT(table.Listing.AllColumns).
		WHERE(postgres.AND(
			table.Listing.CpuID.EQ(postgres.UUID(cpuID)),
			table.Listing.ValuationStatus.NOT_EQ(postgres.String(string(domain.StatusUnvalued))),
			table.Listing.DollarPerMarkSingle.IS_NOT_NULL(),
		))

	rows := []model.Listing{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort dollar-per-mark for component %s: %w", cpuID.String(), err)
	}

	values := []float64{}
	for _, row := range rows {
		if row.DollarPerMarkSingle == nil {
			continue
		}
		values = append(values, *row.DollarPerMarkSingle)
	}

	return values, nil
}

// ListingToSnapshot converts a listing row plus its resolved components
// into the engine's input snapshot.
func ListingToSnapshot(listing model.Listing, components []domain.ComponentSpec) (*domain.ListingSnapshot, error) {
	attributes := domain.AttributeMap{}
	if listing.Attributes != "" {
		if err := json.Unmarshal([]byte(listing.Attributes), &attributes); err != nil {
			return nil, fmt.Errorf("failed to decode attributes of listing %s: %w", listing.ListingID.String(), err)
		}
	}

	marks := map[domain.BenchmarkDimension]float64{}
	for _, component := range components {
		for dim, mark := range component.Marks {
			marks[dim] = mark
		}
	}

	return &domain.ListingSnapshot{
		ListingID: listing.ListingID,
		RawPrice:  decimal.NewFromFloat(listing.RawPrice),
		Components: domain.ComponentRefs{
			CPUID:            listing.CpuID,
			GPUID:            listing.GpuID,
			RAMSpecID:        listing.RamSpecID,
			StorageProfileID: listing.StorageProfileID,
		},
		Attributes: attributes,
		Marks:      marks,
	}, nil
}

func decimalPtrToFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
