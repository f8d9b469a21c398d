package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValuationStatus string

const (
	StatusUnvalued ValuationStatus = "unvalued"
	StatusValued   ValuationStatus = "valued"

	// StatusStale means a dependency changed since the last compute (rule
	// edit, profile change, price edit, benchmark update). It schedules
	// the bulk recompute job; the last breakdown stays readable.
	StatusStale ValuationStatus = "stale"
)

type ComponentRefs struct {
	CPUID            uuid.UUID
	GPUID            *uuid.UUID
	RAMSpecID        *uuid.UUID
	StorageProfileID *uuid.UUID
}

func (r ComponentRefs) All() []uuid.UUID {
	ids := []uuid.UUID{r.CPUID}
	for _, optional := range []*uuid.UUID{r.GPUID, r.RAMSpecID, r.StorageProfileID} {
		if optional != nil {
			ids = append(ids, *optional)
		}
	}
	return ids
}

// ListingSnapshot is everything the pure valuation pipeline needs about one
// listing, captured in a single consistent read. Marks merges the benchmark
// marks of every referenced component.
type ListingSnapshot struct {
	ListingID  uuid.UUID
	RawPrice   decimal.Decimal
	Components ComponentRefs
	Attributes AttributeMap
	Marks      map[BenchmarkDimension]float64
}

// Mark returns the snapshot's benchmark mark for the dimension, if present.
func (s ListingSnapshot) Mark(dim BenchmarkDimension) (float64, bool) {
	m, ok := s.Marks[dim]
	return m, ok
}
