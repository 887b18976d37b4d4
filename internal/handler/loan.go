package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/service"
	"github.com/finveda/loan-review-engine/pkg/response"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// Submit handles POST /applications
func (h *LoanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	app, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, domain.ApplicationResponse{
		Application: app,
		Status:      app.Status(),
	})
}

// List handles GET /applications
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.List(r.Context()))
}

// Unread handles GET /applications/unread
func (h *LoanHandler) Unread(w http.ResponseWriter, r *http.Request) {
	apps := h.service.Unread(r.Context())
	if apps == nil {
		apps = []*domain.LoanApplication{}
	}
	response.Success(w, apps)
}

// View handles GET /applications/{applicationId}; fetching a record marks
// it read and makes it the currently-open application
func (h *LoanHandler) View(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["applicationId"]

	app, err := h.service.View(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.ApplicationResponse{
		Application: app,
		Status:      app.Status(),
	})
}

// Current handles GET /applications/current
func (h *LoanHandler) Current(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.Current(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.ApplicationResponse{
		Application: app,
		Status:      app.Status(),
	})
}

// ResetCurrent handles DELETE /applications/current
func (h *LoanHandler) ResetCurrent(w http.ResponseWriter, r *http.Request) {
	h.service.ResetCurrent(r.Context())
	response.Success(w, map[string]string{"status": "reset"})
}

// Evaluate handles POST /applications/{applicationId}/evaluate
func (h *LoanHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["applicationId"]

	result, err := h.service.Evaluate(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve handles POST /applications/{applicationId}/approve
func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Approve)
}

// Reject handles POST /applications/{applicationId}/reject
func (h *LoanHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Reject)
}

func (h *LoanHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) error) {
	id := mux.Vars(r)["applicationId"]

	if err := fn(r.Context(), id); err != nil {
		writeBusinessError(w, err)
		return
	}

	app, err := h.service.View(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.ApplicationResponse{
		Application: app,
		Status:      app.Status(),
	})
}

// Stats handles GET /stats
func (h *LoanHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.Stats(r.Context()))
}
