package handlers

import (
	"net/http"

	"tokenomics-lab/internal/adapters/primary/http/dto"
	"tokenomics-lab/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.SimulationData) > 0 && req.RunID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrAmbiguousAnalysisInput.Error()})
		return
	}

	var analysis string
	var err error
	if req.RunID != nil {
		analysis, err = h.analysisSvc.AnalyzeRun(c.Request.Context(), *req.RunID)
	} else {
		analysis, err = h.analysisSvc.AnalyzeData(c.Request.Context(), req.SimulationData)
	}
	if err != nil {
		log.WithError(err).Error("risk analysis failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{Analysis: analysis})
}
