package payroll

import (
	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	Type   string          `json:"type"`
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		Type:   string(i.Type),
		Code:   i.Code,
		Label:  i.Label,
		Amount: i.Amount,
	}
}

// PayslipSummary is one employee's totals plus the lines behind them.
// Net = Gross - EmployeeDeductions; EmployerCost = Gross + employer charges.
type PayslipSummary struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeEmail      string          `json:"employee_email"`
	EmployeeName       string          `json:"employee_name"`
	Gross              decimal.Decimal `json:"gross"`
	EmployeeDeductions decimal.Decimal `json:"employee_deductions"`
	Net                decimal.Decimal `json:"net"`
	EmployerCost       decimal.Decimal `json:"employer_cost"`
	Items              []ItemResponse  `json:"items"`
}

// SummaryTotals is the element-wise sum of the payslips in a period.
type SummaryTotals struct {
	EmployeeCount      int             `json:"employee_count"`
	Gross              decimal.Decimal `json:"gross"`
	EmployeeDeductions decimal.Decimal `json:"employee_deductions"`
	Net                decimal.Decimal `json:"net"`
	EmployerCost       decimal.Decimal `json:"employer_cost"`
}

type PeriodSummaryResponse struct {
	Period   period.PeriodResponse `json:"period"`
	Payslips []PayslipSummary      `json:"payslips"`
	Totals   SummaryTotals         `json:"totals"`
}
