package handlers

import (
	"errors"
	"net/http"

	"tokenomics-lab/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrScenarioNotFound),
		errors.Is(err, domain.ErrRunNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrScenarioNameConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidScenarioName),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidTotalSupply),
		errors.Is(err, domain.ErrInvalidCirculatingSupply),
		errors.Is(err, domain.ErrInvalidAllocationPct),
		errors.Is(err, domain.ErrAllocationSumExceedsOne),
		errors.Is(err, domain.ErrInvalidBurnPct),
		errors.Is(err, domain.ErrNegativeSchedule),
		errors.Is(err, domain.ErrNegativeEmission),
		errors.Is(err, domain.ErrEmptySimulationData),
		errors.Is(err, domain.ErrAmbiguousAnalysisInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrAdvisorNotAvailable),
		errors.Is(err, domain.ErrEnvironmentNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Upstream advisor failures
	case errors.Is(err, domain.ErrAdvisorRequestFailed),
		errors.Is(err, domain.ErrAdvisorEmptyResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
