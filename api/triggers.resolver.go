package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) ruleChanged(c *gin.Context) {
	err := m.RevaluerHandler.OnRuleChanged(requestContext(c))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to handle rule change: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"success": "true"})
}

func (m ApiHandler) profileChanged(c *gin.Context) {
	err := m.RevaluerHandler.OnProfileChanged(requestContext(c))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to handle profile change: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"success": "true"})
}

type componentBenchmarkUpdatedRequest struct {
	ComponentID uuid.UUID `json:"componentID"`
}

func (m ApiHandler) componentBenchmarkUpdated(c *gin.Context) {
	var requestBody componentBenchmarkUpdatedRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.ComponentID == uuid.Nil {
		returnErrorJsonCode(fmt.Errorf("componentID is required"), c, 400)
		return
	}

	err := m.RevaluerHandler.OnComponentBenchmarkUpdated(requestContext(c), requestBody.ComponentID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to handle benchmark update: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"success": "true"})
}

type listingPriceChangedRequest struct {
	ListingID uuid.UUID `json:"listingID"`
}

func (m ApiHandler) listingPriceChanged(c *gin.Context) {
	var requestBody listingPriceChangedRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.ListingID == uuid.Nil {
		returnErrorJsonCode(fmt.Errorf("listingID is required"), c, 400)
		return
	}

	err := m.RevaluerHandler.OnListingPriceChanged(requestContext(c), requestBody.ListingID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to handle price change: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"success": "true"})
}
