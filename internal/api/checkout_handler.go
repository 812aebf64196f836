package api

import (
	"encoding/json"
	"net/http"

	"parkhub/internal/entities"
	"parkhub/internal/service"
)

type CheckoutHandler struct {
	Service *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// CreateSession handles POST /api/checkout. A live session answers 201; the
// mock no-charge URL used without provider credentials answers 200.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var payload entities.BookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid booking payload."})
		return
	}

	result, err := h.Service.CreateSession(payload, r.Header.Get("Origin"))
	if err != nil {
		writeError(w, err, "Unable to create checkout session.")
		return
	}

	status := http.StatusCreated
	if result.Mock {
		status = http.StatusOK
	}
	writeJSON(w, status, CheckoutResponse{URL: result.URL})
}
