package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getBreakdown(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid listing id: %w", err), c, 400)
		return
	}

	breakdown, err := m.ValuationBreakdownRepository.GetByListingID(listingID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get breakdown: %w", err), c)
		return
	}

	listing, err := m.ListingRepository.Get(listingID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get listing: %w", err), c)
		return
	}

	c.JSON(200, gin.H{
		"breakdown":       breakdown,
		"valuationStatus": listing.ValuationStatus,
		"rating":          listing.PerformanceValueRating,
	})
}
