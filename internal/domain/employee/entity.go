package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the staff record as the payroll engine sees it. The staff
// management service owns these rows; the engine only reads them. Email is
// the stable identity used across payslips.
type Employee struct {
	ID              string
	Email           string
	FullName        string
	BaseWage        *decimal.Decimal
	IsAdmin         bool
	EPFEnabled      bool
	EPFRateEmployee *decimal.Decimal
	EPFRateEmployer *decimal.Decimal
	SocsoEnabled    bool
	EISEnabled      bool
	HRDEnabled      bool
	IsForeignWorker bool
	SkipPayroll     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
