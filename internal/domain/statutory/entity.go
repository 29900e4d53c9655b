package statutory

import "github.com/shopspring/decimal"

// Scheme enum
type Scheme string

const (
	SchemeSocso Scheme = "socso"
	SchemeEIS   Scheme = "eis"
)

// Bracket maps a wage range to a fixed employee/employer contribution pair.
// WageMax nil means the range is unbounded above. A well-formed table is
// ordered by WageMin and covers every wage without gaps, with the last row
// open-ended.
type Bracket struct {
	ID             string
	Scheme         Scheme
	WageMin        decimal.Decimal
	WageMax        *decimal.Decimal
	EmployeeAmount decimal.Decimal
	EmployerAmount decimal.Decimal
}

// Contribution is the resolved employee/employer pair for one scheme.
type Contribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}
