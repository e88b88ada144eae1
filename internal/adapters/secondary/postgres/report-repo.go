package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

type reportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) ports.ReportRepository {
	return &reportRepo{pool: pool}
}

func (r *reportRepo) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO report (id, created_at, run_id, title, format, content)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.CreatedAt,
		report.RunID,
		report.Title,
		string(report.Format),
		report.Content,
	)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	query := `
		SELECT id, created_at, run_id, title, format, content
		FROM report
		WHERE id = $1
	`
	report, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("get report by id: %w", err)
	}
	return report, nil
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM report WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *reportRepo) List(ctx context.Context, filter ports.ReportListFilter) ([]*domain.Report, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.RunID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("run_id = $%d", argPos))
		args = append(args, filter.RunID)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM report WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, run_id, title, format, content
		FROM report
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate report rows: %w", err)
	}

	return reports, total, nil
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	report := &domain.Report{}
	var format string

	err := row.Scan(&report.ID, &report.CreatedAt, &report.RunID, &report.Title, &format, &report.Content)
	if err != nil {
		return nil, err
	}

	report.Format = domain.ReportFormat(format)
	return report, nil
}
