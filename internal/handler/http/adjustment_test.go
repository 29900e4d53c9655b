package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Malformed UUID segments must be rejected as validation errors before any
// storage call; the services behind these handlers are nil on purpose.
func TestHandlers_MalformedUUIDParamIsUnprocessable(t *testing.T) {
	adjustmentHandler := NewAdjustmentHandler(nil)
	payrollHandler := NewPayrollHandler(nil)

	r := chi.NewRouter()
	r.Get("/employees/{employeeID}/adjustments", adjustmentHandler.List)
	r.Post("/employees/{employeeID}/adjustments", adjustmentHandler.Add)
	r.Put("/employees/{employeeID}/adjustments", adjustmentHandler.ReplaceByCode)
	r.Delete("/employees/{employeeID}/adjustments/{itemID}", adjustmentHandler.Delete)
	r.Get("/periods/{year}/{month}/payslips/{employeeID}", payrollHandler.GetPayslip)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"list", http.MethodGet, "/employees/abc/adjustments?year=2026&month=8"},
		{"add", http.MethodPost, "/employees/abc/adjustments"},
		{"replace", http.MethodPut, "/employees/abc/adjustments"},
		{"delete employee id", http.MethodDelete, "/employees/abc/adjustments/0198b9f1-2c3d-7abc-89ab-0123456789ab"},
		{"delete item id", http.MethodDelete, "/employees/0198b9f1-2c3d-7abc-89ab-0123456789ab/adjustments/abc"},
		{"payslip", http.MethodGet, "/periods/2026/8/payslips/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		})
	}
}
