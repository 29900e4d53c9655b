package payroll

import (
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/config"
	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func defaultStatutoryConfig() config.StatutoryConfig {
	return config.StatutoryConfig{
		EPFDefaultEmployeeRate:    dec("0.11"),
		EPFDefaultEmployerRate:    dec("0.13"),
		SocsoFallbackEmployeeRate: dec("0.005"),
		SocsoFallbackEmployerRate: dec("0.0175"),
		EISFallbackEmployeeRate:   dec("0.002"),
		EISFallbackEmployerRate:   dec("0.002"),
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:              "emp-1",
		Email:           "aisyah@gajihub.my",
		FullName:        "Aisyah Rahman",
		BaseWage:        decPtr("3000.00"),
		EPFEnabled:      true,
		EPFRateEmployee: decPtr("0.11"),
		EPFRateEmployer: decPtr("0.13"),
		SocsoEnabled:    true,
		EISEnabled:      true,
	}
}

func amountOf(t *testing.T, items []payroll.Item, typ payroll.ItemType) decimal.Decimal {
	t.Helper()
	for _, i := range items {
		if i.Type == typ {
			return i.Amount
		}
	}
	t.Fatalf("no item of type %s", typ)
	return decimal.Zero
}

// The worked example: base 3000.00, EPF 11%/13%, empty SOCSO/EIS tables with
// flat fallbacks 0.5%/1.75% and 0.2%/0.2%.
func TestComputeEmployeeItems_WorkedExample(t *testing.T) {
	items := computeEmployeeItems(testEmployee(), nil, statutoryTables{Defaults: defaultStatutoryConfig()})

	assert.Equal(t, "3000.00", amountOf(t, items, payroll.ItemTypeEarnBase).StringFixed(2))
	assert.Equal(t, "330.00", amountOf(t, items, payroll.ItemTypeStatEmpEPF).StringFixed(2))
	assert.Equal(t, "390.00", amountOf(t, items, payroll.ItemTypeStatErEPF).StringFixed(2))
	assert.Equal(t, "15.00", amountOf(t, items, payroll.ItemTypeStatEmpSocso).StringFixed(2))
	assert.Equal(t, "52.50", amountOf(t, items, payroll.ItemTypeStatErSocso).StringFixed(2))
	assert.Equal(t, "6.00", amountOf(t, items, payroll.ItemTypeStatEmpEIS).StringFixed(2))
	assert.Equal(t, "6.00", amountOf(t, items, payroll.ItemTypeStatErEIS).StringFixed(2))
	assert.Equal(t, "0.00", amountOf(t, items, payroll.ItemTypeStatEmpPCB).StringFixed(2))
	assert.Equal(t, "0.00", amountOf(t, items, payroll.ItemTypeStatErHRD).StringFixed(2))

	payslips, _ := summarizeItems(items)
	require.Len(t, payslips, 1)
	assert.Equal(t, "3000.00", payslips[0].Gross.StringFixed(2))
	assert.Equal(t, "2649.00", payslips[0].Net.StringFixed(2))
}

func TestComputeEmployeeItems_BracketTableBeatsFallback(t *testing.T) {
	tables := statutoryTables{
		Defaults: defaultStatutoryConfig(),
		Socso: []statutory.Bracket{
			{WageMin: dec("0"), WageMax: decPtr("2000"), EmployeeAmount: dec("7.50"), EmployerAmount: dec("26.25")},
			{WageMin: dec("2000.01"), WageMax: nil, EmployeeAmount: dec("12.50"), EmployerAmount: dec("43.75")},
		},
	}

	items := computeEmployeeItems(testEmployee(), nil, tables)

	assert.Equal(t, "12.50", amountOf(t, items, payroll.ItemTypeStatEmpSocso).StringFixed(2))
	assert.Equal(t, "43.75", amountOf(t, items, payroll.ItemTypeStatErSocso).StringFixed(2))
	// EIS table is still empty, so its flat fallback applies.
	assert.Equal(t, "6.00", amountOf(t, items, payroll.ItemTypeStatEmpEIS).StringFixed(2))
}

func TestComputeEmployeeItems_ManualItemsAppearOnce(t *testing.T) {
	manual := []adjustment.ManualItem{
		{EmployeeID: "emp-1", Kind: adjustment.KindEarn, Code: "COMM", Label: "Commission", Amount: dec("200.00")},
		{EmployeeID: "emp-1", Kind: adjustment.KindDeduct, Code: "ADV", Label: "Salary advance", Amount: dec("50.00")},
	}

	items := computeEmployeeItems(testEmployee(), manual, statutoryTables{Defaults: defaultStatutoryConfig()})

	var earns, deducts int
	for _, i := range items {
		switch i.Type {
		case payroll.ItemTypeEarnManual:
			earns++
			assert.Equal(t, "COMM", i.Code)
			assert.Equal(t, "200.00", i.Amount.StringFixed(2))
		case payroll.ItemTypeDeductManual:
			deducts++
			assert.Equal(t, "ADV", i.Code)
			assert.Equal(t, "50.00", i.Amount.StringFixed(2))
		}
	}
	assert.Equal(t, 1, earns)
	assert.Equal(t, 1, deducts)

	// Manual items never move the statutory base.
	assert.Equal(t, "330.00", amountOf(t, items, payroll.ItemTypeStatEmpEPF).StringFixed(2))

	payslips, _ := summarizeItems(items)
	require.Len(t, payslips, 1)
	assert.Equal(t, "3200.00", payslips[0].Gross.StringFixed(2))
	assert.Equal(t, "2799.00", payslips[0].Net.StringFixed(2))
}

func TestComputeEmployeeItems_ForeignWorkerContributesNothing(t *testing.T) {
	emp := testEmployee()
	emp.IsForeignWorker = true

	items := computeEmployeeItems(emp, nil, statutoryTables{Defaults: defaultStatutoryConfig()})

	for _, typ := range []payroll.ItemType{
		payroll.ItemTypeStatEmpEPF, payroll.ItemTypeStatEmpSocso, payroll.ItemTypeStatEmpEIS,
		payroll.ItemTypeStatErEPF, payroll.ItemTypeStatErSocso, payroll.ItemTypeStatErEIS,
	} {
		assert.Equal(t, "0.00", amountOf(t, items, typ).StringFixed(2), "type %s", typ)
	}

	payslips, _ := summarizeItems(items)
	require.Len(t, payslips, 1)
	assert.Equal(t, "3000.00", payslips[0].Net.StringFixed(2))
}

func TestComputeEmployeeItems_MissingBaseWageOmitsBaseLine(t *testing.T) {
	emp := testEmployee()
	emp.BaseWage = nil

	items := computeEmployeeItems(emp, nil, statutoryTables{Defaults: defaultStatutoryConfig()})

	for _, i := range items {
		assert.NotEqual(t, payroll.ItemTypeEarnBase, i.Type)
		assert.Equal(t, "0.00", i.Amount.StringFixed(2))
	}
}

func TestComputeEmployeeItems_EPFRateDefaultsWhenRecordHasNone(t *testing.T) {
	emp := testEmployee()
	emp.EPFRateEmployee = nil
	emp.EPFRateEmployer = nil

	defaults := defaultStatutoryConfig()
	defaults.EPFDefaultEmployeeRate = dec("0.09")
	defaults.EPFDefaultEmployerRate = dec("0.12")

	items := computeEmployeeItems(emp, nil, statutoryTables{Defaults: defaults})

	assert.Equal(t, "270.00", amountOf(t, items, payroll.ItemTypeStatEmpEPF).StringFixed(2))
	assert.Equal(t, "360.00", amountOf(t, items, payroll.ItemTypeStatErEPF).StringFixed(2))
}

func TestComputeEmployeeItems_Deterministic(t *testing.T) {
	manual := []adjustment.ManualItem{
		{EmployeeID: "emp-1", Kind: adjustment.KindEarn, Code: "COMM", Label: "Commission", Amount: dec("200.00")},
	}
	tables := statutoryTables{Defaults: defaultStatutoryConfig()}

	first := computeEmployeeItems(testEmployee(), manual, tables)
	second := computeEmployeeItems(testEmployee(), manual, tables)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Type, second[i].Type)
		assert.Equal(t, first[i].Code, second[i].Code)
		assert.True(t, first[i].Amount.Equal(second[i].Amount))
	}
}
