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

func (h *Handler) GenerateReport(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportSvc.Generate(c.Request.Context(), req.RunID, req.Title, req.IncludeAnalysis)
	if err != nil {
		log.WithError(err).Error("generate report failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

func (h *Handler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ReportListFilter{
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("run_id"); raw != "" {
		runID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
			return
		}
		filter.RunID = runID
	}

	reports, total, err := h.reportSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list reports failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ReportSummaryResponse, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ToReportSummaryResponse(r))
	}

	c.JSON(http.StatusOK, dto.ListReportsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	report, err := h.reportSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	if err := h.reportSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete report failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
