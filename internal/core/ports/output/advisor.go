package ports

import (
	"context"

	"tokenomics-lab/internal/core/domain"
)

// AdvisorClient is the outbound port for the LLM risk advisor. Analyze sends
// the simulation results to the provider and returns the natural-language
// assessment.
type AdvisorClient interface {
	IsAvailable() bool
	Analyze(ctx context.Context, results []domain.MonthSnapshot) (string, error)
}
