package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, persisted parameter set that can be executed many
// times as its parameters are tuned.
type Scenario struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// SimulationRun is one executed simulation of a scenario. Parameters are
// copied at execution time so later scenario edits do not rewrite history.
type SimulationRun struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	ScenarioID uuid.UUID       `json:"scenario_id"`
	Parameters Parameters      `json:"parameters"`
	Results    []MonthSnapshot `json:"results"`
}
