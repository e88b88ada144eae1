package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportFormat string

const (
	ReportFormatMarkdown ReportFormat = "markdown"
)

// Report is a rendered document built from one simulation run. Reports are
// archival: RunID identifies the source run but deleting the run does not
// delete the report.
type Report struct {
	ID        uuid.UUID    `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	RunID     uuid.UUID    `json:"run_id"`
	Title     string       `json:"title"`
	Format    ReportFormat `json:"format"`
	Content   string       `json:"content"`
}
