package adjustment

import "context"

// ManualItemService is the single write path for ad-hoc earnings and
// deductions. All writes require an admin caller and are rejected when the
// target period is locked.
type ManualItemService interface {
	Add(ctx context.Context, req AddManualItemRequest) (ManualItemResponse, error)
	ReplaceByCode(ctx context.Context, req ReplaceManualItemsRequest) ([]ManualItemResponse, error)

	// Delete removes one item by id. The item must belong to employeeID;
	// anything else is ErrManualItemNotFound.
	Delete(ctx context.Context, employeeID, itemID string) error

	ListForEmployee(ctx context.Context, employeeID string, year, month int) ([]ManualItemResponse, error)
}
