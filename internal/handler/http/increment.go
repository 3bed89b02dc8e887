package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/increment"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type IncrementHandler interface {
	GetPolicy(w http.ResponseWriter, r *http.Request)
	ReplacePolicy(w http.ResponseWriter, r *http.Request)
	ApplyIncrements(w http.ResponseWriter, r *http.Request)
}

type incrementHandlerImpl struct {
	incrementService increment.IncrementService
}

func NewIncrementHandler(incrementService increment.IncrementService) IncrementHandler {
	return &incrementHandlerImpl{incrementService: incrementService}
}

func (h *incrementHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.incrementService.GetPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *incrementHandlerImpl) ReplacePolicy(w http.ResponseWriter, r *http.Request) {
	var req increment.ReplacePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if operatorID, ok := claims["operator_id"].(string); ok && operatorID != "" {
			req.LastUpdatedBy = &operatorID
		}
	}

	result, err := h.incrementService.ReplacePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Increment policy replaced", result)
}

func (h *incrementHandlerImpl) ApplyIncrements(w http.ResponseWriter, r *http.Request) {
	result, err := h.incrementService.ApplyIncrements(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
