package dto

import (
	"time"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
)

// ============================================================================
// Scenario DTOs
// ============================================================================

type CreateScenarioRequest struct {
	Name        string                  `json:"name" binding:"required,max=255"`
	Description string                  `json:"description"`
	Parameters  SimulationParametersDTO `json:"parameters"`
}

type UpdateScenarioRequest struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Parameters  *SimulationParametersDTO `json:"parameters"`
}

type ScenarioResponse struct {
	ID          uuid.UUID               `json:"id"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Name        string                  `json:"name"`
	Slug        string                  `json:"slug"`
	Description string                  `json:"description"`
	Parameters  SimulationParametersDTO `json:"parameters"`
}

type ListScenariosResponse struct {
	Items      []ScenarioResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

func ToScenarioResponse(scenario *domain.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ID:          scenario.ID,
		CreatedAt:   scenario.CreatedAt,
		UpdatedAt:   scenario.UpdatedAt,
		Name:        scenario.Name,
		Slug:        scenario.Slug,
		Description: scenario.Description,
		Parameters:  FromParameters(scenario.Parameters),
	}
}

// ============================================================================
// Simulation Run DTOs
// ============================================================================

// RunResponse carries the full month-by-month results. List endpoints return
// RunSummaryResponse instead; a 60-month run is a large payload.
type RunResponse struct {
	ID         uuid.UUID               `json:"id"`
	CreatedAt  time.Time               `json:"created_at"`
	ScenarioID uuid.UUID               `json:"scenario_id"`
	Parameters SimulationParametersDTO `json:"parameters"`
	Results    []domain.MonthSnapshot  `json:"results"`
}

type RunSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ScenarioID uuid.UUID `json:"scenario_id"`
	Months     int       `json:"months"`
}

type ListRunsResponse struct {
	Items      []RunSummaryResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}

func ToRunResponse(run *domain.SimulationRun) RunResponse {
	return RunResponse{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt,
		ScenarioID: run.ScenarioID,
		Parameters: FromParameters(run.Parameters),
		Results:    run.Results,
	}
}

func ToRunSummaryResponse(run *domain.SimulationRun) RunSummaryResponse {
	return RunSummaryResponse{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt,
		ScenarioID: run.ScenarioID,
		Months:     len(run.Results),
	}
}
