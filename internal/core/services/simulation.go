package services

import (
	"tokenomics-lab/internal/core/domain"
)

// SimulationService runs the supply model for ad-hoc parameter sets. It is
// stateless; persisted executions go through ScenarioService.
type SimulationService struct{}

func NewSimulationService() *SimulationService {
	return &SimulationService{}
}

func (s *SimulationService) Run(params domain.Parameters) ([]domain.MonthSnapshot, error) {
	return domain.Simulate(params)
}
