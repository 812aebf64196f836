package api

import (
	"net/http"
	"strconv"

	"parkhub/internal/service"
)

// maxAdminBookings caps the admin listing window.
const maxAdminBookings = 100

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookings handles GET /admin/bookings with an optional limit query
// parameter, capped at maxAdminBookings.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit := maxAdminBookings
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	records, err := h.Service.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err, "Unable to fetch bookings")
		return
	}
	writeJSON(w, http.StatusOK, BookingsResponse{Bookings: records})
}
