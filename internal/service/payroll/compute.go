package payroll

import (
	"github.com/gajihub/payroll-backend-go/internal/config"
	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/shopspring/decimal"
)

// statutoryTables carries the bracket tables and configured defaults one
// build works against. Loaded once per build, shared across employees.
type statutoryTables struct {
	Socso    []statutory.Bracket
	EIS      []statutory.Bracket
	Defaults config.StatutoryConfig
}

// computeEmployeeItems stages the full line set for one employee. The output
// is a pure function of the inputs, emitted in a fixed order: base, manual
// earnings, manual deductions, employee statutory lines, employer statutory
// lines. The statutory base is the base wage alone; manual items never feed
// into it.
func computeEmployeeItems(emp employee.Employee, manual []adjustment.ManualItem, tables statutoryTables) []payroll.Item {
	var items []payroll.Item

	stage := func(t payroll.ItemType, code, label string, amount decimal.Decimal) {
		items = append(items, payroll.Item{
			EmployeeID: emp.ID,
			Type:       t,
			Code:       code,
			Label:      label,
			Amount:     statutory.Round2(amount),
		})
	}

	base := decimal.Zero
	if emp.BaseWage != nil {
		base = *emp.BaseWage
	}

	// A missing or zero base wage is not an error; the base line is simply
	// omitted and statutory amounts resolve against zero.
	if base.IsPositive() {
		stage(payroll.ItemTypeEarnBase, "BASE", "Base pay", base)
	}

	for _, m := range manual {
		if m.Kind == adjustment.KindEarn {
			stage(payroll.ItemTypeEarnManual, m.Code, m.Label, m.Amount)
		}
	}
	for _, m := range manual {
		if m.Kind == adjustment.KindDeduct {
			stage(payroll.ItemTypeDeductManual, m.Code, m.Label, m.Amount)
		}
	}

	epf := computeEPF(emp, base, tables.Defaults)
	socso := computeBracketScheme(emp.SocsoEnabled, emp, base, tables.Socso,
		tables.Defaults.SocsoFallbackEmployeeRate, tables.Defaults.SocsoFallbackEmployerRate)
	eis := computeBracketScheme(emp.EISEnabled, emp, base, tables.EIS,
		tables.Defaults.EISFallbackEmployeeRate, tables.Defaults.EISFallbackEmployerRate)

	stage(payroll.ItemTypeStatEmpEPF, "EPF", "EPF employee contribution", epf.Employee)
	stage(payroll.ItemTypeStatEmpSocso, "SOCSO", "SOCSO employee contribution", socso.Employee)
	stage(payroll.ItemTypeStatEmpEIS, "EIS", "EIS employee contribution", eis.Employee)
	stage(payroll.ItemTypeStatEmpPCB, "PCB", "PCB", decimal.Zero)

	stage(payroll.ItemTypeStatErEPF, "EPF", "EPF employer contribution", epf.Employer)
	stage(payroll.ItemTypeStatErSocso, "SOCSO", "SOCSO employer contribution", socso.Employer)
	stage(payroll.ItemTypeStatErEIS, "EIS", "EIS employer contribution", eis.Employer)
	stage(payroll.ItemTypeStatErHRD, "HRD", "HRD levy", decimal.Zero)

	return items
}

// computeEPF applies the employee's own rates, falling back to the
// organization defaults when the record carries none. Foreign workers and
// employees with EPF disabled contribute nothing.
func computeEPF(emp employee.Employee, base decimal.Decimal, defaults config.StatutoryConfig) statutory.Contribution {
	if !emp.EPFEnabled || emp.IsForeignWorker {
		return statutory.Contribution{Employee: decimal.Zero, Employer: decimal.Zero}
	}

	employeeRate := defaults.EPFDefaultEmployeeRate
	if emp.EPFRateEmployee != nil {
		employeeRate = *emp.EPFRateEmployee
	}
	employerRate := defaults.EPFDefaultEmployerRate
	if emp.EPFRateEmployer != nil {
		employerRate = *emp.EPFRateEmployer
	}

	return statutory.FlatRate(base, employeeRate, employerRate)
}

// computeBracketScheme resolves SOCSO/EIS against the bracket table, applying
// the configured flat-percentage fallback when no row applies.
func computeBracketScheme(enabled bool, emp employee.Employee, base decimal.Decimal, brackets []statutory.Bracket, fallbackEmployeeRate, fallbackEmployerRate decimal.Decimal) statutory.Contribution {
	if !enabled || emp.IsForeignWorker {
		return statutory.Contribution{Employee: decimal.Zero, Employer: decimal.Zero}
	}

	if c, ok := statutory.Resolve(brackets, base); ok {
		return c
	}

	return statutory.FlatRate(base, fallbackEmployeeRate, fallbackEmployerRate)
}
