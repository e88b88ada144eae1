package handlers

import (
	"net/http"

	"tokenomics-lab/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetEnvironment(c *gin.Context) {
	desc, err := h.environmentSvc.Describe()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnvironmentResponse(desc))
}
