package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = "id, year, month, status, created_at, locked_at"

func scanPeriod(row pgx.Row) (period.Period, error) {
	var p period.Period
	err := row.Scan(&p.ID, &p.Year, &p.Month, &p.Status, &p.CreatedAt, &p.LockedAt)
	return p, err
}

func (r *periodRepository) GetOrCreate(ctx context.Context, year, month int) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO NOTHING returns no row for the loser of a concurrent
	// first-time insert; the loser re-reads the winner's row below.
	query := `
		INSERT INTO periods (id, year, month, status)
		VALUES ($1, $2, $3, 'open')
		ON CONFLICT (year, month) DO NOTHING
		RETURNING ` + periodColumns

	id, err := uuid.NewV7()
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to generate period id: %w", err)
	}

	p, err := scanPeriod(q.QueryRow(ctx, query, id.String(), year, month))
	if err == nil {
		return p, nil
	}
	if err != pgx.ErrNoRows {
		return period.Period{}, fmt.Errorf("failed to create period: %w", err)
	}

	return r.Get(ctx, year, month)
}

func (r *periodRepository) Get(ctx context.Context, year, month int) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM periods WHERE year = $1 AND month = $2`

	p, err := scanPeriod(q.QueryRow(ctx, query, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to get period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM periods ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []period.Period
	for rows.Next() {
		var p period.Period
		if err := rows.Scan(&p.ID, &p.Year, &p.Month, &p.Status, &p.CreatedAt, &p.LockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *periodRepository) GetForUpdate(ctx context.Context, year, month int) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM periods WHERE year = $1 AND month = $2 FOR UPDATE`

	p, err := scanPeriod(q.QueryRow(ctx, query, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to lock period row: %w", err)
	}

	return p, nil
}

func (r *periodRepository) GetForUpdateByID(ctx context.Context, id string) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM periods WHERE id = $1 FOR UPDATE`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to lock period row: %w", err)
	}

	return p, nil
}

func (r *periodRepository) UpdateStatus(ctx context.Context, id string, status period.Status) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE periods
		SET status = $2,
		    locked_at = CASE WHEN $2 = 'locked' THEN NOW() ELSE NULL END
		WHERE id = $1
		RETURNING ` + periodColumns

	p, err := scanPeriod(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to update period status: %w", err)
	}

	return p, nil
}
