package period

import (
	"context"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/domain/auth"
	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
)

type PeriodServiceImpl struct {
	db         *database.DB
	periodRepo period.PeriodRepository
	timeout    time.Duration
}

func NewPeriodService(db *database.DB, periodRepo period.PeriodRepository, timeout time.Duration) period.PeriodService {
	return &PeriodServiceImpl{
		db:         db,
		periodRepo: periodRepo,
		timeout:    timeout,
	}
}

func validateYearMonth(year, month int) error {
	if !validator.IsValidYearMonth(year, month) {
		return validator.ValidationErrors{{Field: "period", Message: "year/month out of range"}}
	}
	return nil
}

func (s *PeriodServiceImpl) GetOrCreate(ctx context.Context, year, month int) (period.PeriodResponse, error) {
	if err := validateYearMonth(year, month); err != nil {
		return period.PeriodResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, err := s.periodRepo.GetOrCreate(ctx, year, month)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.ToResponse(p), nil
}

func (s *PeriodServiceImpl) Get(ctx context.Context, year, month int) (period.PeriodResponse, error) {
	if err := validateYearMonth(year, month); err != nil {
		return period.PeriodResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, err := s.periodRepo.Get(ctx, year, month)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.ToResponse(p), nil
}

func (s *PeriodServiceImpl) List(ctx context.Context) ([]period.PeriodResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, period.ToResponse(p))
	}

	return result, nil
}

func (s *PeriodServiceImpl) Lock(ctx context.Context, year, month int) (period.PeriodResponse, error) {
	return s.transition(ctx, year, month, period.StatusLocked)
}

func (s *PeriodServiceImpl) Unlock(ctx context.Context, year, month int) (period.PeriodResponse, error) {
	return s.transition(ctx, year, month, period.StatusOpen)
}

// transition moves a period between open and locked. The row lock serializes
// the transition against a concurrent build of the same period; reapplying
// the current state is a no-op, not an error.
func (s *PeriodServiceImpl) transition(ctx context.Context, year, month int, target period.Status) (period.PeriodResponse, error) {
	if err := validateYearMonth(year, month); err != nil {
		return period.PeriodResponse{}, err
	}

	actor, err := auth.FromContext(ctx)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	if err := actor.RequireAdmin(); err != nil {
		return period.PeriodResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result period.Period
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(txCtx, year, month)
		if err != nil {
			return err
		}

		if p.Status == target {
			result = p
			return nil
		}

		result, err = s.periodRepo.UpdateStatus(txCtx, p.ID, target)
		return err
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.ToResponse(result), nil
}
