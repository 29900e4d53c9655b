package payroll

import (
	"sort"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// summarizeItems folds a period's line items into per-employee payslip
// summaries plus company totals. Classification follows the item type alone,
// so the aggregator and builder cannot drift apart; amounts are already
// rounded by the builder and only added here, which keeps detail rows and
// totals reconciled to the cent.
func summarizeItems(items []payroll.Item) ([]payroll.PayslipSummary, payroll.SummaryTotals) {
	byEmployee := make(map[string]*payroll.PayslipSummary)
	var order []string

	for _, item := range items {
		s, ok := byEmployee[item.EmployeeID]
		if !ok {
			s = &payroll.PayslipSummary{
				EmployeeID:         item.EmployeeID,
				Gross:              decimal.Zero,
				EmployeeDeductions: decimal.Zero,
				Net:                decimal.Zero,
				EmployerCost:       decimal.Zero,
			}
			if item.EmployeeEmail != nil {
				s.EmployeeEmail = *item.EmployeeEmail
			}
			if item.EmployeeName != nil {
				s.EmployeeName = *item.EmployeeName
			}
			byEmployee[item.EmployeeID] = s
			order = append(order, item.EmployeeID)
		}

		s.Items = append(s.Items, payroll.ToItemResponse(item))

		switch {
		case item.Type.IsEarning():
			s.Gross = s.Gross.Add(item.Amount)
		case item.Type.IsEmployeeDeduction():
			s.EmployeeDeductions = s.EmployeeDeductions.Add(item.Amount)
		case item.Type.IsEmployerCharge():
			s.EmployerCost = s.EmployerCost.Add(item.Amount)
		}
	}

	payslips := make([]payroll.PayslipSummary, 0, len(byEmployee))
	for _, id := range order {
		s := byEmployee[id]
		s.Net = s.Gross.Sub(s.EmployeeDeductions)
		s.EmployerCost = s.EmployerCost.Add(s.Gross)
		payslips = append(payslips, *s)
	}
	sort.Slice(payslips, func(i, j int) bool {
		return payslips[i].EmployeeEmail < payslips[j].EmployeeEmail
	})

	totals := payroll.SummaryTotals{
		EmployeeCount:      len(payslips),
		Gross:              decimal.Zero,
		EmployeeDeductions: decimal.Zero,
		Net:                decimal.Zero,
		EmployerCost:       decimal.Zero,
	}
	for _, s := range payslips {
		totals.Gross = totals.Gross.Add(s.Gross)
		totals.EmployeeDeductions = totals.EmployeeDeductions.Add(s.EmployeeDeductions)
		totals.Net = totals.Net.Add(s.Net)
		totals.EmployerCost = totals.EmployerCost.Add(s.EmployerCost)
	}

	return payslips, totals
}
