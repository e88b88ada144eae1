package dto

import (
	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
)

// AnalyzeRequest accepts either inline simulation data or a stored run ID.
// Exactly one of the two must be set.
type AnalyzeRequest struct {
	SimulationData []domain.MonthSnapshot `json:"simulation_data"`
	RunID          *uuid.UUID             `json:"run_id"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
