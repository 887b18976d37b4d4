package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/service"
	"github.com/finveda/loan-review-engine/pkg/response"
)

type MandateHandler struct {
	service *service.MandateService
}

func NewMandateHandler(service *service.MandateService) *MandateHandler {
	return &MandateHandler{service: service}
}

// Create handles POST /mandates
func (h *MandateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMandateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	mandate, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, mandate)
}

// ListByBank handles GET /mandates/bank/{bankId}
func (h *MandateHandler) ListByBank(w http.ResponseWriter, r *http.Request) {
	bankID := mux.Vars(r)["bankId"]

	mandates, err := h.service.ListByBank(r.Context(), bankID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	if mandates == nil {
		mandates = []*domain.Mandate{}
	}

	response.Success(w, mandates)
}

// Get handles GET /mandates/{mandateId}
func (h *MandateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mandateID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, detail)
}

// Approve handles POST /mandates/{mandateId}/approve
func (h *MandateHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mandateID(w, r)
	if !ok {
		return
	}

	mandate, err := h.service.Approve(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, mandate)
}

// Reject handles POST /mandates/{mandateId}/reject
func (h *MandateHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mandateID(w, r)
	if !ok {
		return
	}

	mandate, err := h.service.Reject(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, mandate)
}

func (h *MandateHandler) mandateID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["mandateId"])
	if err != nil {
		response.BadRequest(w, "Invalid mandate id", err)
		return uuid.Nil, false
	}
	return id, true
}
