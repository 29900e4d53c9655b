package payroll

import "context"

type PayrollService interface {
	// Build atomically regenerates every computed line for (year, month) and
	// returns the resulting summaries. It requires an admin caller and fails
	// with period.ErrPeriodLocked when the period is locked. Rebuilding with
	// unchanged inputs produces an identical item set.
	Build(ctx context.Context, year, month int) (PeriodSummaryResponse, error)

	Summarize(ctx context.Context, year, month int) (PeriodSummaryResponse, error)
	GetPayslip(ctx context.Context, employeeID string, year, month int) (PayslipSummary, error)
}
