package payroll

import "context"

type PayrollItemRepository interface {
	// DeleteByPeriod and InsertItems are always called together inside one
	// transaction; a partial failure must leave the previous item set intact.
	DeleteByPeriod(ctx context.Context, periodID string) error
	InsertItems(ctx context.Context, items []Item) error

	// ListByPeriod returns items ordered by employee email then by the staged
	// line order, so two builds of the same inputs list identically.
	ListByPeriod(ctx context.Context, periodID string) ([]Item, error)
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]Item, error)
}
