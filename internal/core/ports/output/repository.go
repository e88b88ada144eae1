package ports

import (
	"context"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
)

type ScenarioListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type RunListFilter struct {
	ScenarioID uuid.UUID
	Limit      int
	Offset     int
}

type ReportListFilter struct {
	RunID  uuid.UUID
	Limit  int
	Offset int
}

type ScenarioRepository interface {
	Create(ctx context.Context, scenario *domain.Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error)
	GetByName(ctx context.Context, name string) (*domain.Scenario, error)
	Update(ctx context.Context, scenario *domain.Scenario) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ScenarioListFilter) ([]*domain.Scenario, int, error)
}

type RunRepository interface {
	Create(ctx context.Context, run *domain.SimulationRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByScenario(ctx context.Context, filter RunListFilter) ([]*domain.SimulationRun, int, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ReportListFilter) ([]*domain.Report, int, error)
}
