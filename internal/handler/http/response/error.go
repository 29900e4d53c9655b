package response

import (
	"errors"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/domain/auth"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/domain/period"
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Storage failures fall
// through to the default branch; they are never silently swallowed upstream,
// so the wrapped context reaches the request log.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Period lifecycle
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, period.ErrPeriodLocked):
		Conflict(w, "Payroll period is locked")

	// Employees and line items
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, adjustment.ErrManualItemNotFound):
		NotFound(w, "Manual item not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, statutory.ErrUnknownScheme):
		NotFound(w, "Unknown statutory scheme")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
