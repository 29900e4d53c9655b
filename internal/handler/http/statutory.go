package http

import (
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StatutoryHandler interface {
	ListBrackets(w http.ResponseWriter, r *http.Request)
}

type statutoryHandlerImpl struct {
	bracketService statutory.BracketService
}

func NewStatutoryHandler(bracketService statutory.BracketService) StatutoryHandler {
	return &statutoryHandlerImpl{bracketService: bracketService}
}

func (h *statutoryHandlerImpl) ListBrackets(w http.ResponseWriter, r *http.Request) {
	scheme := chi.URLParam(r, "scheme")

	result, err := h.bracketService.ListBrackets(r.Context(), scheme)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
