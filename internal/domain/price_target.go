package domain

import (
	"github.com/shopspring/decimal"
)

type PriceTargetConfidence string

const (
	ConfidenceLow    PriceTargetConfidence = "low"
	ConfidenceMedium PriceTargetConfidence = "medium"
	ConfidenceHigh   PriceTargetConfidence = "high"
)

// PriceTarget holds the price ceilings derived from a component cohort's
// adjusted-price distribution. A listing priced at or below Great is an
// excellent deal. Cohorts of size zero produce no PriceTarget at all.
type PriceTarget struct {
	Great      decimal.Decimal       `json:"great"`
	Good       decimal.Decimal       `json:"good"`
	Fair       decimal.Decimal       `json:"fair"`
	Confidence PriceTargetConfidence `json:"confidence"`
	SampleSize int                   `json:"sample_size"`
}

func ConfidenceForSampleSize(n int) PriceTargetConfidence {
	switch {
	case n >= 10:
		return ConfidenceHigh
	case n >= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
