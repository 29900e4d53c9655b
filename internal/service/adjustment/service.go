package adjustment

import (
	"context"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/domain/auth"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
)

type ManualItemServiceImpl struct {
	db           *database.DB
	itemRepo     adjustment.ManualItemRepository
	periodRepo   period.PeriodRepository
	employeeRepo employee.EmployeeRepository
	timeout      time.Duration
}

func NewManualItemService(
	db *database.DB,
	itemRepo adjustment.ManualItemRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	timeout time.Duration,
) adjustment.ManualItemService {
	return &ManualItemServiceImpl{
		db:           db,
		itemRepo:     itemRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
		timeout:      timeout,
	}
}

func (s *ManualItemServiceImpl) Add(ctx context.Context, req adjustment.AddManualItemRequest) (adjustment.ManualItemResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.ManualItemResponse{}, err
	}

	actor, err := auth.FromContext(ctx)
	if err != nil {
		return adjustment.ManualItemResponse{}, err
	}
	if err := actor.RequireAdmin(); err != nil {
		return adjustment.ManualItemResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return adjustment.ManualItemResponse{}, err
	}

	// Adding an item for a month nobody has touched yet creates the period.
	p, err := s.periodRepo.GetOrCreate(ctx, req.Year, req.Month)
	if err != nil {
		return adjustment.ManualItemResponse{}, err
	}

	label := req.Code
	if req.Label != nil && *req.Label != "" {
		label = *req.Label
	}

	item := adjustment.ManualItem{
		EmployeeID: emp.ID,
		PeriodID:   p.ID,
		Kind:       adjustment.Kind(req.Kind),
		Code:       req.Code,
		Label:      label,
		Amount:     req.Amount,
	}

	var created adjustment.ManualItem
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		locked, err := s.periodRepo.GetForUpdate(txCtx, req.Year, req.Month)
		if err != nil {
			return err
		}
		if locked.IsLocked() {
			return period.ErrPeriodLocked
		}

		created, err = s.itemRepo.Insert(txCtx, item)
		return err
	})
	if err != nil {
		return adjustment.ManualItemResponse{}, err
	}

	return adjustment.ToResponse(created), nil
}

func (s *ManualItemServiceImpl) ReplaceByCode(ctx context.Context, req adjustment.ReplaceManualItemsRequest) ([]adjustment.ManualItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	p, err := s.periodRepo.GetOrCreate(ctx, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	// Delete-then-insert must share one transaction so a re-save replaces
	// the existing rows instead of accumulating duplicates, and a failure
	// midway leaves the stored set untouched.
	var created []adjustment.ManualItem
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		locked, err := s.periodRepo.GetForUpdate(txCtx, req.Year, req.Month)
		if err != nil {
			return err
		}
		if locked.IsLocked() {
			return period.ErrPeriodLocked
		}

		if err := s.itemRepo.DeleteByCodes(txCtx, emp.ID, p.ID, req.Codes); err != nil {
			return err
		}

		for _, item := range req.Items {
			label := item.Code
			if item.Label != nil && *item.Label != "" {
				label = *item.Label
			}

			inserted, err := s.itemRepo.Insert(txCtx, adjustment.ManualItem{
				EmployeeID: emp.ID,
				PeriodID:   p.ID,
				Kind:       adjustment.Kind(item.Kind),
				Code:       item.Code,
				Label:      label,
				Amount:     item.Amount,
			})
			if err != nil {
				return err
			}
			created = append(created, inserted)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]adjustment.ManualItemResponse, 0, len(created))
	for _, m := range created {
		result = append(result, adjustment.ToResponse(m))
	}

	return result, nil
}

func (s *ManualItemServiceImpl) Delete(ctx context.Context, employeeID, itemID string) error {
	actor, err := auth.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		item, err := s.itemRepo.GetByID(txCtx, itemID)
		if err != nil {
			return err
		}
		// An item id under another employee's path is indistinguishable from
		// a missing one to the caller.
		if item.EmployeeID != emp.ID {
			return adjustment.ErrManualItemNotFound
		}

		locked, err := s.periodRepo.GetForUpdateByID(txCtx, item.PeriodID)
		if err != nil {
			return err
		}
		if locked.IsLocked() {
			return period.ErrPeriodLocked
		}

		return s.itemRepo.DeleteByID(txCtx, item.ID)
	})
}

func (s *ManualItemServiceImpl) ListForEmployee(ctx context.Context, employeeID string, year, month int) ([]adjustment.ManualItemResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	p, err := s.periodRepo.Get(ctx, year, month)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByEmployeePeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return nil, err
	}

	result := make([]adjustment.ManualItemResponse, 0, len(items))
	for _, m := range items {
		result = append(result, adjustment.ToResponse(m))
	}

	return result, nil
}
