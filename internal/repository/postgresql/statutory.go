package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
)

type bracketRepository struct {
	db *database.DB
}

func NewBracketRepository(db *database.DB) statutory.BracketRepository {
	return &bracketRepository{db: db}
}

func (r *bracketRepository) ListByScheme(ctx context.Context, scheme statutory.Scheme) ([]statutory.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, scheme, wage_min, wage_max, employee_amount, employer_amount
		FROM contribution_brackets
		WHERE scheme = $1
		ORDER BY wage_min
	`

	rows, err := q.Query(ctx, query, scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s brackets: %w", scheme, err)
	}
	defer rows.Close()

	var brackets []statutory.Bracket
	for rows.Next() {
		var b statutory.Bracket
		if err := rows.Scan(&b.ID, &b.Scheme, &b.WageMin, &b.WageMax, &b.EmployeeAmount, &b.EmployerAmount); err != nil {
			return nil, fmt.Errorf("failed to scan bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	return brackets, rows.Err()
}
