package handlers

import (
	"net/http"
	"strconv"

	"tokenomics-lab/internal/adapters/primary/http/dto"
	ports "tokenomics-lab/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ExecuteRun(c *gin.Context) {
	scenarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario id"})
		return
	}

	run, err := h.scenarioSvc.ExecuteRun(c.Request.Context(), scenarioID)
	if err != nil {
		log.WithError(err).Error("execute simulation run failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRunResponse(run))
}

func (h *Handler) ListRuns(c *gin.Context) {
	scenarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	runs, total, err := h.scenarioSvc.ListRuns(c.Request.Context(), ports.RunListFilter{
		ScenarioID: scenarioID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.WithError(err).Error("list simulation runs failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.RunSummaryResponse, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.ToRunSummaryResponse(r))
	}

	c.JSON(http.StatusOK, dto.ListRunsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := h.scenarioSvc.GetRun(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *Handler) DeleteRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	if err := h.scenarioSvc.DeleteRun(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete simulation run failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
