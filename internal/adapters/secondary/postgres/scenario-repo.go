package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

type scenarioRepo struct {
	pool *pgxpool.Pool
}

func NewScenarioRepository(pool *pgxpool.Pool) ports.ScenarioRepository {
	return &scenarioRepo{pool: pool}
}

func (r *scenarioRepo) Create(ctx context.Context, scenario *domain.Scenario) error {
	paramsJSON, err := json.Marshal(scenario.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}

	query := `
		INSERT INTO scenario (id, created_at, updated_at, name, slug, description, parameters)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		scenario.ID,
		scenario.CreatedAt,
		scenario.UpdatedAt,
		scenario.Name,
		scenario.Slug,
		scenario.Description,
		paramsJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrScenarioNameConflict
		}
		return fmt.Errorf("create scenario: %w", err)
	}
	return nil
}

func (r *scenarioRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	query := `
		SELECT id, created_at, updated_at, name, slug, description, parameters
		FROM scenario
		WHERE id = $1
	`
	scenario, err := scanScenario(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScenarioNotFound
		}
		return nil, fmt.Errorf("get scenario by id: %w", err)
	}
	return scenario, nil
}

func (r *scenarioRepo) GetByName(ctx context.Context, name string) (*domain.Scenario, error) {
	query := `
		SELECT id, created_at, updated_at, name, slug, description, parameters
		FROM scenario
		WHERE name = $1
	`
	scenario, err := scanScenario(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScenarioNotFound
		}
		return nil, fmt.Errorf("get scenario by name: %w", err)
	}
	return scenario, nil
}

func (r *scenarioRepo) Update(ctx context.Context, scenario *domain.Scenario) error {
	paramsJSON, err := json.Marshal(scenario.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}

	query := `
		UPDATE scenario
		SET name = $1, slug = $2, description = $3, parameters = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.pool.Exec(ctx, query,
		scenario.Name,
		scenario.Slug,
		scenario.Description,
		paramsJSON,
		scenario.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrScenarioNameConflict
		}
		return fmt.Errorf("update scenario: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrScenarioNotFound
	}
	return nil
}

func (r *scenarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM scenario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrScenarioNotFound
	}
	return nil
}

// Sortable columns are allowlisted; anything else falls back to newest-first.
var scenarioSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *scenarioRepo) List(ctx context.Context, filter ports.ScenarioListFilter) ([]*domain.Scenario, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM scenario WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count scenarios: %w", err)
	}

	orderBy := "created_at DESC"
	if col, ok := scenarioSortColumns[filter.SortBy]; ok {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = col + " " + dir
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, name, slug, description, parameters
		FROM scenario
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.Scenario
	for rows.Next() {
		scenario, err := scanScenario(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan scenario row: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate scenario rows: %w", err)
	}

	return scenarios, total, nil
}

func scanScenario(row pgx.Row) (*domain.Scenario, error) {
	scenario := &domain.Scenario{}
	var paramsJSON []byte

	err := row.Scan(
		&scenario.ID, &scenario.CreatedAt, &scenario.UpdatedAt,
		&scenario.Name, &scenario.Slug, &scenario.Description, &paramsJSON,
	)
	if err != nil {
		return nil, err
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &scenario.Parameters); err != nil {
			return nil, fmt.Errorf("unmarshal parameters: %w", err)
		}
	}
	return scenario, nil
}
