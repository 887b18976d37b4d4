package handler

import (
	"net/http"
	"strconv"

	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/pkg/response"
)

type NotificationHandler struct {
	center *notify.Center
}

func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List handles GET /notifications?limit=n
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	response.Success(w, h.center.Recent(limit))
}
