package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type manualItemRepository struct {
	db *database.DB
}

func NewManualItemRepository(db *database.DB) adjustment.ManualItemRepository {
	return &manualItemRepository{db: db}
}

const manualItemColumns = "id, employee_id, period_id, kind, code, label, amount, created_at"

func (r *manualItemRepository) Insert(ctx context.Context, item adjustment.ManualItem) (adjustment.ManualItem, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return adjustment.ManualItem{}, fmt.Errorf("failed to generate manual item id: %w", err)
	}

	query := `
		INSERT INTO manual_items (id, employee_id, period_id, kind, code, label, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + manualItemColumns

	var m adjustment.ManualItem
	err = q.QueryRow(ctx, query,
		id.String(), item.EmployeeID, item.PeriodID, item.Kind, item.Code, item.Label, item.Amount,
	).Scan(&m.ID, &m.EmployeeID, &m.PeriodID, &m.Kind, &m.Code, &m.Label, &m.Amount, &m.CreatedAt)
	if err != nil {
		return adjustment.ManualItem{}, fmt.Errorf("failed to insert manual item: %w", err)
	}

	return m, nil
}

func (r *manualItemRepository) GetByID(ctx context.Context, id string) (adjustment.ManualItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + manualItemColumns + ` FROM manual_items WHERE id = $1`

	var m adjustment.ManualItem
	err := q.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.EmployeeID, &m.PeriodID, &m.Kind, &m.Code, &m.Label, &m.Amount, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.ManualItem{}, adjustment.ErrManualItemNotFound
		}
		return adjustment.ManualItem{}, fmt.Errorf("failed to get manual item: %w", err)
	}

	return m, nil
}

func (r *manualItemRepository) DeleteByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM manual_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete manual item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrManualItemNotFound
	}

	return nil
}

func (r *manualItemRepository) ListByPeriod(ctx context.Context, periodID string) ([]adjustment.ManualItem, error) {
	return r.list(ctx, `
		SELECT `+manualItemColumns+`
		FROM manual_items
		WHERE period_id = $1
		ORDER BY employee_id, kind, code, id
	`, periodID)
}

func (r *manualItemRepository) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]adjustment.ManualItem, error) {
	return r.list(ctx, `
		SELECT `+manualItemColumns+`
		FROM manual_items
		WHERE employee_id = $1 AND period_id = $2
		ORDER BY kind, code, id
	`, employeeID, periodID)
}

func (r *manualItemRepository) list(ctx context.Context, query string, args ...interface{}) ([]adjustment.ManualItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual items: %w", err)
	}
	defer rows.Close()

	var items []adjustment.ManualItem
	for rows.Next() {
		var m adjustment.ManualItem
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.PeriodID, &m.Kind, &m.Code, &m.Label, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manual item: %w", err)
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

func (r *manualItemRepository) DeleteByCodes(ctx context.Context, employeeID, periodID string, codes []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM manual_items
		WHERE employee_id = $1 AND period_id = $2 AND code = ANY($3)
	`

	if _, err := q.Exec(ctx, query, employeeID, periodID, codes); err != nil {
		return fmt.Errorf("failed to delete manual items by code: %w", err)
	}

	return nil
}
