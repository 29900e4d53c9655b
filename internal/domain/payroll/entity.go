package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType enum. The stat_emp_pcb and stat_er_hrd lines are reserved
// zero-valued placeholders until the tax/levy collaborator fills them in.
type ItemType string

const (
	ItemTypeEarnBase     ItemType = "earn_base"
	ItemTypeEarnManual   ItemType = "earn_manual"
	ItemTypeDeductManual ItemType = "deduct_manual"
	ItemTypeStatEmpEPF   ItemType = "stat_emp_epf"
	ItemTypeStatEmpSocso ItemType = "stat_emp_socso"
	ItemTypeStatEmpEIS   ItemType = "stat_emp_eis"
	ItemTypeStatEmpPCB   ItemType = "stat_emp_pcb"
	ItemTypeStatErEPF    ItemType = "stat_er_epf"
	ItemTypeStatErSocso  ItemType = "stat_er_socso"
	ItemTypeStatErEIS    ItemType = "stat_er_eis"
	ItemTypeStatErHRD    ItemType = "stat_er_hrd"
)

// Item is one computed payroll line. The builder owns these rows completely:
// every build deletes and regenerates the full set for the period, so an
// item set is always a pure function of the build inputs.
type Item struct {
	ID         string
	EmployeeID string
	PeriodID   string
	Type       ItemType
	Code       string
	Label      string
	Amount     decimal.Decimal
	CreatedAt  time.Time

	// Joined fields
	EmployeeEmail *string
	EmployeeName  *string
}

// IsEarning reports whether the line adds to gross pay.
func (t ItemType) IsEarning() bool {
	return t == ItemTypeEarnBase || t == ItemTypeEarnManual
}

// IsEmployeeDeduction reports whether the line reduces the employee's net pay.
func (t ItemType) IsEmployeeDeduction() bool {
	switch t {
	case ItemTypeDeductManual, ItemTypeStatEmpEPF, ItemTypeStatEmpSocso, ItemTypeStatEmpEIS, ItemTypeStatEmpPCB:
		return true
	}
	return false
}

// IsEmployerCharge reports whether the line is borne by the employer on top
// of gross pay.
func (t ItemType) IsEmployerCharge() bool {
	switch t {
	case ItemTypeStatErEPF, ItemTypeStatErSocso, ItemTypeStatErEIS, ItemTypeStatErHRD:
		return true
	}
	return false
}
