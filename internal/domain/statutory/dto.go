package statutory

import "github.com/shopspring/decimal"

type BracketResponse struct {
	ID             string           `json:"id"`
	Scheme         string           `json:"scheme"`
	WageMin        decimal.Decimal  `json:"wage_min"`
	WageMax        *decimal.Decimal `json:"wage_max,omitempty"`
	EmployeeAmount decimal.Decimal  `json:"employee_amount"`
	EmployerAmount decimal.Decimal  `json:"employer_amount"`
}

func ToResponse(b Bracket) BracketResponse {
	return BracketResponse{
		ID:             b.ID,
		Scheme:         string(b.Scheme),
		WageMin:        b.WageMin,
		WageMax:        b.WageMax,
		EmployeeAmount: b.EmployeeAmount,
		EmployerAmount: b.EmployerAmount,
	}
}
