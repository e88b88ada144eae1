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

func (h *Handler) ListScenarios(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ScenarioListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	scenarios, total, err := h.scenarioSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list scenarios failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		items = append(items, dto.ToScenarioResponse(s))
	}

	c.JSON(http.StatusOK, dto.ListScenariosResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetScenario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario id"})
		return
	}

	scenario, err := h.scenarioSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

func (h *Handler) CreateScenario(c *gin.Context) {
	var req dto.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scenario, err := h.scenarioSvc.Create(c.Request.Context(), req.Name, req.Description, req.Parameters.ToParameters())
	if err != nil {
		log.WithError(err).Error("create scenario failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScenarioResponse(scenario))
}

func (h *Handler) UpdateScenario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario id"})
		return
	}

	var req dto.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Parameters != nil {
		updates["parameters"] = req.Parameters.ToParameters()
	}

	scenario, err := h.scenarioSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update scenario failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

func (h *Handler) DeleteScenario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario id"})
		return
	}

	if err := h.scenarioSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete scenario failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
