package api

import (
	"fmt"

	"rigvalue/internal/calculator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getPriceTargets computes buy targets for a component from the adjusted
// prices of every valued listing carrying it, plus summary stats of the
// cohort.
func (m ApiHandler) getPriceTargets(c *gin.Context) {
	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid component id: %w", err), c, 400)
		return
	}

	component, err := m.ComponentRepository.Get(componentID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get component: %w", err), c)
		return
	}

	cohort, err := m.ListingRepository.GetCohortAdjustedPrices(componentID, uuid.Nil)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get cohort prices: %w", err), c)
		return
	}

	target := calculator.AnalyzePriceTargets(cohort)
	if target == nil {
		returnErrorJsonCode(fmt.Errorf("no valued listings for component %s", componentID.String()), c, 404)
		return
	}

	summary, err := calculator.SummarizeCohort(cohort)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to summarize cohort: %w", err), c)
		return
	}

	c.JSON(200, gin.H{
		"component":   component.Name,
		"priceTarget": target,
		"cohort":      summary,
	})
}
