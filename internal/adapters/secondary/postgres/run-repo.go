package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

type runRepo struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) ports.RunRepository {
	return &runRepo{pool: pool}
}

func (r *runRepo) Create(ctx context.Context, run *domain.SimulationRun) error {
	paramsJSON, err := json.Marshal(run.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}
	resultsJSON, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	query := `
		INSERT INTO simulation_run (id, created_at, scenario_id, parameters, results)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query,
		run.ID,
		run.CreatedAt,
		run.ScenarioID,
		paramsJSON,
		resultsJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrScenarioNotFound
		}
		return fmt.Errorf("create simulation run: %w", err)
	}
	return nil
}

func (r *runRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SimulationRun, error) {
	query := `
		SELECT id, created_at, scenario_id, parameters, results
		FROM simulation_run
		WHERE id = $1
	`
	run, err := scanRun(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("get simulation run by id: %w", err)
	}
	return run, nil
}

func (r *runRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM simulation_run WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete simulation run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

func (r *runRepo) ListByScenario(ctx context.Context, filter ports.RunListFilter) ([]*domain.SimulationRun, int, error) {
	countQuery := `SELECT COUNT(*) FROM simulation_run WHERE scenario_id = $1`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, filter.ScenarioID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count simulation runs: %w", err)
	}

	query := `
		SELECT id, created_at, scenario_id, parameters, results
		FROM simulation_run
		WHERE scenario_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.ScenarioID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan simulation run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate simulation run rows: %w", err)
	}

	return runs, total, nil
}

func scanRun(row pgx.Row) (*domain.SimulationRun, error) {
	run := &domain.SimulationRun{}
	var paramsJSON, resultsJSON []byte

	err := row.Scan(&run.ID, &run.CreatedAt, &run.ScenarioID, &paramsJSON, &resultsJSON)
	if err != nil {
		return nil, err
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &run.Parameters); err != nil {
			return nil, fmt.Errorf("unmarshal parameters: %w", err)
		}
	}
	if len(resultsJSON) > 0 {
		if err := json.Unmarshal(resultsJSON, &run.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	return run, nil
}
