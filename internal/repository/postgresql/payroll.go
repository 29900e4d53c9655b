package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollItemRepository struct {
	db *database.DB
}

func NewPayrollItemRepository(db *database.DB) payroll.PayrollItemRepository {
	return &payrollItemRepository{db: db}
}

func (r *payrollItemRepository) DeleteByPeriod(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE period_id = $1`, periodID); err != nil {
		return fmt.Errorf("failed to delete payroll items for period: %w", err)
	}

	return nil
}

func (r *payrollItemRepository) InsertItems(ctx context.Context, items []payroll.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO payroll_items (id, employee_id, period_id, item_type, code, label, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, item := range items {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate payroll item id: %w", err)
		}
		batch.Queue(query, id.String(), item.EmployeeID, item.PeriodID, item.Type, item.Code, item.Label, item.Amount)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert payroll item: %w", err)
		}
	}

	return nil
}

// Item ids are UUIDv7, so ordering by id preserves the staged line order
// within one build.
const payrollItemSelect = `
	SELECT i.id, i.employee_id, i.period_id, i.item_type, i.code, i.label, i.amount, i.created_at,
	       e.email, e.full_name
	FROM payroll_items i
	JOIN employees e ON e.id = i.employee_id
`

func (r *payrollItemRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Item, error) {
	return r.list(ctx, payrollItemSelect+`
		WHERE i.period_id = $1
		ORDER BY e.email, i.id
	`, periodID)
}

func (r *payrollItemRepository) ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]payroll.Item, error) {
	return r.list(ctx, payrollItemSelect+`
		WHERE i.employee_id = $1 AND i.period_id = $2
		ORDER BY i.id
	`, employeeID, periodID)
}

func (r *payrollItemRepository) list(ctx context.Context, query string, args ...interface{}) ([]payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		var i payroll.Item
		if err := rows.Scan(
			&i.ID, &i.EmployeeID, &i.PeriodID, &i.Type, &i.Code, &i.Label, &i.Amount, &i.CreatedAt,
			&i.EmployeeEmail, &i.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}
