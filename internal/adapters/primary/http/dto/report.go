package dto

import (
	"time"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
)

type GenerateReportRequest struct {
	RunID           uuid.UUID `json:"run_id" binding:"required"`
	Title           string    `json:"title" binding:"max=255"`
	IncludeAnalysis bool      `json:"include_analysis"`
}

type ReportResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RunID     uuid.UUID `json:"run_id"`
	Title     string    `json:"title"`
	Format    string    `json:"format"`
	Content   string    `json:"content"`
}

// ReportSummaryResponse omits the rendered content; lists stay small.
type ReportSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RunID     uuid.UUID `json:"run_id"`
	Title     string    `json:"title"`
	Format    string    `json:"format"`
}

type ListReportsResponse struct {
	Items      []ReportSummaryResponse `json:"items"`
	Total      int                     `json:"total"`
	PageSize   int                     `json:"page_size"`
	NextOffset int                     `json:"next_offset"`
}

func ToReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:        report.ID,
		CreatedAt: report.CreatedAt,
		RunID:     report.RunID,
		Title:     report.Title,
		Format:    string(report.Format),
		Content:   report.Content,
	}
}

func ToReportSummaryResponse(report *domain.Report) ReportSummaryResponse {
	return ReportSummaryResponse{
		ID:        report.ID,
		CreatedAt: report.CreatedAt,
		RunID:     report.RunID,
		Title:     report.Title,
		Format:    string(report.Format),
	}
}
