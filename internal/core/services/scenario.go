package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

type ScenarioService struct {
	scenarioRepo ports.ScenarioRepository
	runRepo      ports.RunRepository
}

func NewScenarioService(scenarioRepo ports.ScenarioRepository, runRepo ports.RunRepository) *ScenarioService {
	return &ScenarioService{scenarioRepo: scenarioRepo, runRepo: runRepo}
}

func (s *ScenarioService) Create(ctx context.Context, name, description string, params domain.Parameters) (*domain.Scenario, error) {
	if name == "" {
		return nil, domain.ErrInvalidScenarioName
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	scenario := &domain.Scenario{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Slug:        generateSlug(name),
		Description: description,
		Parameters:  params,
	}

	if err := s.scenarioRepo.Create(ctx, scenario); err != nil {
		return nil, err
	}

	return s.scenarioRepo.GetByID(ctx, scenario.ID)
}

func (s *ScenarioService) Get(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	return s.scenarioRepo.GetByID(ctx, id)
}

func (s *ScenarioService) List(ctx context.Context, filter ports.ScenarioListFilter) ([]*domain.Scenario, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.scenarioRepo.List(ctx, filter)
}

func (s *ScenarioService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Scenario, error) {
	scenario, err := s.scenarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		name := v.(string)
		if name == "" {
			return nil, domain.ErrInvalidScenarioName
		}
		scenario.Name = name
		scenario.Slug = generateSlug(name)
	}
	if v, ok := updates["description"]; ok && v != nil {
		scenario.Description = v.(string)
	}
	if v, ok := updates["parameters"]; ok && v != nil {
		params := v.(domain.Parameters)
		if err := params.Validate(); err != nil {
			return nil, err
		}
		scenario.Parameters = params
	}

	if err := s.scenarioRepo.Update(ctx, scenario); err != nil {
		return nil, err
	}

	return s.scenarioRepo.GetByID(ctx, id)
}

func (s *ScenarioService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scenarioRepo.Delete(ctx, id)
}

// ExecuteRun simulates the scenario with its current parameters and persists
// the outcome. The parameter set is copied onto the run so the stored results
// stay interpretable after the scenario is edited.
func (s *ScenarioService) ExecuteRun(ctx context.Context, scenarioID uuid.UUID) (*domain.SimulationRun, error) {
	scenario, err := s.scenarioRepo.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	results, err := domain.Simulate(scenario.Parameters)
	if err != nil {
		return nil, err
	}

	run := &domain.SimulationRun{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		ScenarioID: scenario.ID,
		Parameters: scenario.Parameters,
		Results:    results,
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, err
	}

	return s.runRepo.GetByID(ctx, run.ID)
}

func (s *ScenarioService) GetRun(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

func (s *ScenarioService) ListRuns(ctx context.Context, filter ports.RunListFilter) ([]*domain.SimulationRun, int, error) {
	if _, err := s.scenarioRepo.GetByID(ctx, filter.ScenarioID); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.runRepo.ListByScenario(ctx, filter)
}

func (s *ScenarioService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	return s.runRepo.Delete(ctx, id)
}

func generateSlug(name string) string {
	slug := ""
	for _, ch := range name {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' {
			slug += string(ch)
		} else if ch >= 'A' && ch <= 'Z' {
			slug += string(ch + 32)
		} else if ch == ' ' || ch == '_' {
			slug += "-"
		}
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
