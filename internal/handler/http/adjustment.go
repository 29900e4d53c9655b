package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gajihub/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	ReplaceByCode(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// uuidParam parses a UUID URL segment. Rejecting malformed ids here keeps
// them from reaching the database as cast errors.
func uuidParam(w http.ResponseWriter, r *http.Request, name, field string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.ValidationError(w, map[string]string{field: "must be a valid UUID"})
		return "", false
	}
	return id, true
}

type adjustmentHandlerImpl struct {
	manualItemService adjustment.ManualItemService
}

func NewAdjustmentHandler(manualItemService adjustment.ManualItemService) AdjustmentHandler {
	return &adjustmentHandlerImpl{manualItemService: manualItemService}
}

func (h *adjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(w, r, "employeeID", "employee_id")
	if !ok {
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be a number", nil)
		return
	}

	result, err := h.manualItemService.ListForEmployee(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(w, r, "employeeID", "employee_id")
	if !ok {
		return
	}

	var req adjustment.AddManualItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.manualItemService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual item added", result)
}

func (h *adjustmentHandlerImpl) ReplaceByCode(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(w, r, "employeeID", "employee_id")
	if !ok {
		return
	}

	var req adjustment.ReplaceManualItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.manualItemService.ReplaceByCode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(w, r, "employeeID", "employee_id")
	if !ok {
		return
	}
	itemID, ok := uuidParam(w, r, "itemID", "item_id")
	if !ok {
		return
	}

	if err := h.manualItemService.Delete(r.Context(), employeeID, itemID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
