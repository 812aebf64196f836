package api

import (
	"encoding/json"
	"net/http"

	"parkhub/internal/entities"
	"parkhub/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookings handles GET /api/bookings: the most recent records, newest
// first.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListRecent(r.Context(), service.DefaultRecentBookings)
	if err != nil {
		writeError(w, err, "Unable to fetch bookings")
		return
	}
	writeJSON(w, http.StatusOK, BookingsResponse{Bookings: records})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var payload entities.BookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payload"})
		return
	}

	id, err := h.Service.Append(r.Context(), payload)
	if err != nil {
		writeError(w, err, "Unable to create booking")
		return
	}
	writeJSON(w, http.StatusCreated, CreateBookingResponse{ID: id})
}
