package handlers

import (
	"net/http"

	"tokenomics-lab/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Simulate(c *gin.Context) {
	var req dto.SimulationParametersDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.simulationSvc.Run(req.ToParameters())
	if err != nil {
		log.WithError(err).Error("run simulation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
