package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// run_id on report is deliberately not a foreign key: reports are archival
// and outlive the runs they were generated from.
const schema = `
CREATE TABLE IF NOT EXISTS scenario (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	parameters JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS simulation_run (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	scenario_id UUID NOT NULL REFERENCES scenario(id) ON DELETE CASCADE,
	parameters JSONB NOT NULL,
	results JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_simulation_run_scenario_id ON simulation_run(scenario_id);

CREATE TABLE IF NOT EXISTS report (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	run_id UUID NOT NULL,
	title TEXT NOT NULL,
	format TEXT NOT NULL,
	content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_report_run_id ON report(run_id);
`

// InitSchema applies the schema on startup. Statements are idempotent so
// repeated boots against the same database are safe.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
