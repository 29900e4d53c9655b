package adjustment

import "context"

type ManualItemRepository interface {
	Insert(ctx context.Context, item ManualItem) (ManualItem, error)
	GetByID(ctx context.Context, id string) (ManualItem, error)
	DeleteByID(ctx context.Context, id string) error

	ListByPeriod(ctx context.Context, periodID string) ([]ManualItem, error)
	ListByEmployeePeriod(ctx context.Context, employeeID, periodID string) ([]ManualItem, error)

	// DeleteByCodes removes the items for (employee, period) whose code is in
	// codes. Paired with Insert inside one transaction it gives
	// replace-by-code its idempotent semantics.
	DeleteByCodes(ctx context.Context, employeeID, periodID string, codes []string) error
}
