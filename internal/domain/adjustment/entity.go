package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum
type Kind string

const (
	KindEarn   Kind = "earn"
	KindDeduct Kind = "deduct"
)

// ManualItem is an ad-hoc earning or deduction scoped to one employee and one
// period (commission, advance, ...). Amounts are stored positive; a deduct
// item reduces net pay. Manual items survive payroll rebuilds; they are the
// only line-item category the builder does not regenerate.
type ManualItem struct {
	ID         string
	EmployeeID string
	PeriodID   string
	Kind       Kind
	Code       string
	Label      string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
