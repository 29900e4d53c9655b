package payroll

import (
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSummarizeItems_CompanyTotalsAreElementWiseSums(t *testing.T) {
	empA := testEmployee()
	empB := employee.Employee{
		ID:              "emp-2",
		Email:           "farid@gajihub.my",
		FullName:        "Farid Osman",
		BaseWage:        decPtr("1500.00"),
		EPFEnabled:      true,
		EPFRateEmployee: decPtr("0.11"),
		EPFRateEmployer: decPtr("0.13"),
		SocsoEnabled:    true,
		EISEnabled:      true,
	}

	tables := statutoryTables{Defaults: defaultStatutoryConfig()}
	var items []payroll.Item
	for _, emp := range []employee.Employee{empA, empB} {
		staged := computeEmployeeItems(emp, nil, tables)
		for i := range staged {
			staged[i].EmployeeEmail = strPtr(emp.Email)
			staged[i].EmployeeName = strPtr(emp.FullName)
		}
		items = append(items, staged...)
	}

	payslips, totals := summarizeItems(items)

	require.Len(t, payslips, 2)
	assert.Equal(t, 2, totals.EmployeeCount)

	// Ordered by email.
	assert.Equal(t, "aisyah@gajihub.my", payslips[0].EmployeeEmail)
	assert.Equal(t, "farid@gajihub.my", payslips[1].EmployeeEmail)

	assert.Equal(t, "4500.00", totals.Gross.StringFixed(2))
	assert.Equal(t,
		payslips[0].Net.Add(payslips[1].Net).StringFixed(2),
		totals.Net.StringFixed(2))
	assert.Equal(t,
		payslips[0].EmployeeDeductions.Add(payslips[1].EmployeeDeductions).StringFixed(2),
		totals.EmployeeDeductions.StringFixed(2))
	assert.Equal(t,
		payslips[0].EmployerCost.Add(payslips[1].EmployerCost).StringFixed(2),
		totals.EmployerCost.StringFixed(2))
}

// Reconciliation: net = gross - (epf + socso + eis + pcb + manual deductions)
// must hold exactly to 2 decimals for every payslip.
func TestSummarizeItems_NetReconciles(t *testing.T) {
	wages := []string{"123.45", "999.99", "1500.00", "3210.87", "10000.01"}
	tables := statutoryTables{Defaults: defaultStatutoryConfig()}

	for _, wage := range wages {
		emp := testEmployee()
		emp.BaseWage = decPtr(wage)

		items := computeEmployeeItems(emp, nil, tables)
		payslips, _ := summarizeItems(items)
		require.Len(t, payslips, 1)
		s := payslips[0]

		assert.Equal(t,
			s.Gross.Sub(s.EmployeeDeductions).StringFixed(2),
			s.Net.StringFixed(2),
			"wage %s", wage)
	}
}

func TestSummarizeItems_Empty(t *testing.T) {
	payslips, totals := summarizeItems(nil)
	assert.Empty(t, payslips)
	assert.Equal(t, 0, totals.EmployeeCount)
	assert.Equal(t, "0.00", totals.Gross.StringFixed(2))
}

func TestSummarizeItems_EmployerCostIncludesGrossAndCharges(t *testing.T) {
	items := computeEmployeeItems(testEmployee(), nil, statutoryTables{Defaults: defaultStatutoryConfig()})
	payslips, _ := summarizeItems(items)
	require.Len(t, payslips, 1)

	// gross 3000 + epf_er 390 + socso_er 52.50 + eis_er 6 + hrd 0
	assert.Equal(t, "3448.50", payslips[0].EmployerCost.StringFixed(2))
}
