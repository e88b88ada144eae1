package services

import (
	"context"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

// AnalysisService sends simulation results to the LLM risk advisor. The
// advisor is optional; every method fails with ErrAdvisorNotAvailable when it
// was not configured at startup.
type AnalysisService struct {
	advisor ports.AdvisorClient
	runRepo ports.RunRepository
}

func NewAnalysisService(advisor ports.AdvisorClient, runRepo ports.RunRepository) *AnalysisService {
	return &AnalysisService{advisor: advisor, runRepo: runRepo}
}

func (s *AnalysisService) AnalyzeData(ctx context.Context, results []domain.MonthSnapshot) (string, error) {
	if len(results) == 0 {
		return "", domain.ErrEmptySimulationData
	}
	if s.advisor == nil || !s.advisor.IsAvailable() {
		return "", domain.ErrAdvisorNotAvailable
	}
	return s.advisor.Analyze(ctx, results)
}

func (s *AnalysisService) AnalyzeRun(ctx context.Context, runID uuid.UUID) (string, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return "", err
	}
	return s.AnalyzeData(ctx, run.Results)
}
