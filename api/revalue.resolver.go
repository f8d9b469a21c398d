package api

import (
	"context"
	"errors"
	"fmt"

	"rigvalue/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type revalueRequest struct {
	ListingID uuid.UUID `json:"listingID"`
}

func (m ApiHandler) revalue(c *gin.Context) {
	var requestBody revalueRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.ListingID == uuid.Nil {
		returnErrorJsonCode(fmt.Errorf("listingID is required"), c, 400)
		return
	}

	breakdown, err := m.ValuationService.Revalue(requestContext(c), requestBody.ListingID)
	if err != nil {
		confErr := domain.ConfigurationError{}
		if errors.As(err, &confErr) {
			returnErrorJsonCode(err, c, 422)
			return
		}
		returnErrorJson(fmt.Errorf("failed to revalue listing: %w", err), c)
		return
	}

	c.JSON(200, breakdown)
}

func (m ApiHandler) revalueAll(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	ctx := context.WithValue(requestContext(c), domain.ContextProfileKey, profile)

	result, err := m.ValuationService.RevalueAll(ctx)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to revalue listings: %w", err), c)
		return
	}
	endProfile()

	c.JSON(200, gin.H{
		"result":  result,
		"profile": profile,
	})
}

type processQueueRequest struct {
	Limit int64 `json:"limit"`
}

func (m ApiHandler) processQueue(c *gin.Context) {
	requestBody := processQueueRequest{Limit: 50}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
			return
		}
	}

	err := m.RevaluerHandler.ProcessQueue(requestContext(c), requestBody.Limit)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to process queue: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"success": "true"})
}
