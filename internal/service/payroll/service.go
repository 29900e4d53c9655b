package payroll

import (
	"context"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/config"
	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/domain/auth"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	itemRepo       payroll.PayrollItemRepository
	periodRepo     period.PeriodRepository
	employeeRepo   employee.EmployeeRepository
	manualItemRepo adjustment.ManualItemRepository
	bracketRepo    statutory.BracketRepository
	statutoryCfg   config.StatutoryConfig
	buildTimeout   time.Duration
	readTimeout    time.Duration
}

func NewPayrollService(
	db *database.DB,
	itemRepo payroll.PayrollItemRepository,
	periodRepo period.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	manualItemRepo adjustment.ManualItemRepository,
	bracketRepo statutory.BracketRepository,
	statutoryCfg config.StatutoryConfig,
	buildTimeout, readTimeout time.Duration,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		itemRepo:       itemRepo,
		periodRepo:     periodRepo,
		employeeRepo:   employeeRepo,
		manualItemRepo: manualItemRepo,
		bracketRepo:    bracketRepo,
		statutoryCfg:   statutoryCfg,
		buildTimeout:   buildTimeout,
		readTimeout:    readTimeout,
	}
}

func validateYearMonth(year, month int) error {
	if !validator.IsValidYearMonth(year, month) {
		return validator.ValidationErrors{{Field: "period", Message: "year/month out of range"}}
	}
	return nil
}

// Build replaces the full computed line set for (year, month) in one
// transaction. The period row lock serializes concurrent builds and lock
// attempts; any failure rolls everything back, leaving the previous item set
// intact. Manual items are read, never touched.
func (s *PayrollServiceImpl) Build(ctx context.Context, year, month int) (payroll.PeriodSummaryResponse, error) {
	if err := validateYearMonth(year, month); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	actor, err := auth.FromContext(ctx)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	if err := actor.RequireAdmin(); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.buildTimeout)
	defer cancel()

	if _, err := s.periodRepo.GetOrCreate(ctx, year, month); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(txCtx, year, month)
		if err != nil {
			return err
		}
		if p.IsLocked() {
			return period.ErrPeriodLocked
		}

		employees, err := s.employeeRepo.ListPayrollEligible(txCtx)
		if err != nil {
			return err
		}

		manualItems, err := s.manualItemRepo.ListByPeriod(txCtx, p.ID)
		if err != nil {
			return err
		}
		manualByEmployee := make(map[string][]adjustment.ManualItem)
		for _, m := range manualItems {
			manualByEmployee[m.EmployeeID] = append(manualByEmployee[m.EmployeeID], m)
		}

		tables := statutoryTables{Defaults: s.statutoryCfg}
		if tables.Socso, err = s.bracketRepo.ListByScheme(txCtx, statutory.SchemeSocso); err != nil {
			return err
		}
		if tables.EIS, err = s.bracketRepo.ListByScheme(txCtx, statutory.SchemeEIS); err != nil {
			return err
		}

		if err := s.itemRepo.DeleteByPeriod(txCtx, p.ID); err != nil {
			return err
		}

		var staged []payroll.Item
		for _, emp := range employees {
			items := computeEmployeeItems(emp, manualByEmployee[emp.ID], tables)
			for i := range items {
				items[i].PeriodID = p.ID
			}
			staged = append(staged, items...)
		}

		return s.itemRepo.InsertItems(txCtx, staged)
	})
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	return s.Summarize(ctx, year, month)
}

func (s *PayrollServiceImpl) Summarize(ctx context.Context, year, month int) (payroll.PeriodSummaryResponse, error) {
	if err := validateYearMonth(year, month); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	p, err := s.periodRepo.Get(ctx, year, month)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	items, err := s.itemRepo.ListByPeriod(ctx, p.ID)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	payslips, totals := summarizeItems(items)

	return payroll.PeriodSummaryResponse{
		Period:   period.ToResponse(p),
		Payslips: payslips,
		Totals:   totals,
	}, nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string, year, month int) (payroll.PayslipSummary, error) {
	if err := validateYearMonth(year, month); err != nil {
		return payroll.PayslipSummary{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipSummary{}, err
	}

	p, err := s.periodRepo.Get(ctx, year, month)
	if err != nil {
		return payroll.PayslipSummary{}, err
	}

	items, err := s.itemRepo.ListByEmployeePeriod(ctx, emp.ID, p.ID)
	if err != nil {
		return payroll.PayslipSummary{}, err
	}
	if len(items) == 0 {
		return payroll.PayslipSummary{}, payroll.ErrPayslipNotFound
	}

	payslips, _ := summarizeItems(items)
	return payslips[0], nil
}
