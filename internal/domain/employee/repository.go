package employee

import "context"

// EmployeeRepository is read-only: employee rows are mutated by the external
// staff management collaborator, never by this engine.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListPayrollEligible returns every employee with skip_payroll = false,
	// ordered by email so rebuilds stage lines deterministically.
	ListPayrollEligible(ctx context.Context) ([]Employee, error)
}
