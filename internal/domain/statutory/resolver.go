package statutory

import "github.com/shopspring/decimal"

// Resolve maps a wage to its contribution pair. It first looks for the row
// whose range contains the wage exactly; on a malformed table (a gap) it
// falls back to the row with the greatest wage_min not exceeding the wage.
// The second return is false when no row applies at all (an empty table, or
// a wage below the lowest wage_min) and the caller decides the fallback.
func Resolve(brackets []Bracket, wage decimal.Decimal) (Contribution, bool) {
	for _, b := range brackets {
		if b.WageMin.GreaterThan(wage) {
			continue
		}
		if b.WageMax == nil || wage.LessThanOrEqual(*b.WageMax) {
			return Contribution{
				Employee: Round2(b.EmployeeAmount),
				Employer: Round2(b.EmployerAmount),
			}, true
		}
	}

	// Gap in the table: take the closest row below the wage.
	var best *Bracket
	for i := range brackets {
		b := &brackets[i]
		if b.WageMin.GreaterThan(wage) {
			continue
		}
		if best == nil || b.WageMin.GreaterThan(best.WageMin) {
			best = b
		}
	}
	if best == nil {
		return Contribution{}, false
	}

	return Contribution{
		Employee: Round2(best.EmployeeAmount),
		Employer: Round2(best.EmployerAmount),
	}, true
}

// FlatRate computes a contribution pair as flat percentages of the wage,
// used when a bracket table has no rows. The rates come from configuration.
func FlatRate(wage, employeeRate, employerRate decimal.Decimal) Contribution {
	return Contribution{
		Employee: Round2(wage.Mul(employeeRate)),
		Employer: Round2(wage.Mul(employerRate)),
	}
}

// Round2 rounds to 2 decimal places, half away from zero. Every monetary
// amount the engine emits goes through this.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
