package adjustment

import (
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ManualItemResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	PeriodID   string          `json:"period_id"`
	Kind       string          `json:"kind"`
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
}

func ToResponse(m ManualItem) ManualItemResponse {
	return ManualItemResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		PeriodID:   m.PeriodID,
		Kind:       string(m.Kind),
		Code:       m.Code,
		Label:      m.Label,
		Amount:     m.Amount,
	}
}

type AddManualItemRequest struct {
	EmployeeID string          `json:"-"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Kind       string          `json:"kind"` // "earn" or "deduct"
	Code       string          `json:"code"`
	Label      *string         `json:"label,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *AddManualItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}
	if r.Kind != string(KindEarn) && r.Kind != string(KindDeduct) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'earn' or 'deduct'"})
	}
	if !validator.IsValidItemCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be a short uppercase code"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReplaceManualItemsRequest replaces every item for (employee, period) whose
// code is listed in Codes with the given Items. Re-submitting the same
// payload leaves the stored set unchanged.
type ReplaceManualItemsRequest struct {
	EmployeeID string                  `json:"-"`
	Year       int                     `json:"year"`
	Month      int                     `json:"month"`
	Codes      []string                `json:"codes"`
	Items      []ReplacementManualItem `json:"items"`
}

type ReplacementManualItem struct {
	Kind   string          `json:"kind"`
	Code   string          `json:"code"`
	Label  *string         `json:"label,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *ReplaceManualItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}
	if len(r.Codes) == 0 {
		errs = append(errs, validator.ValidationError{Field: "codes", Message: "at least one code is required"})
	}
	for _, code := range r.Codes {
		if !validator.IsValidItemCode(code) {
			errs = append(errs, validator.ValidationError{Field: "codes", Message: "'" + code + "' is not a valid code"})
		}
	}
	for i, item := range r.Items {
		field := "items[" + validator.Itoa(i) + "]"
		if item.Kind != string(KindEarn) && item.Kind != string(KindDeduct) {
			errs = append(errs, validator.ValidationError{Field: field + ".kind", Message: "must be 'earn' or 'deduct'"})
		}
		if !validator.IsValidItemCode(item.Code) {
			errs = append(errs, validator.ValidationError{Field: field + ".code", Message: "must be a short uppercase code"})
		}
		if !validator.IsInSlice(item.Code, r.Codes) {
			errs = append(errs, validator.ValidationError{Field: field + ".code", Message: "must be listed in codes"})
		}
		if !item.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: field + ".amount", Message: "must be greater than zero"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
