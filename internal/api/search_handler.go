package api

import (
	"net/http"
	"strconv"

	"parkhub/internal/entities"
	"parkhub/internal/service"
)

type SearchHandler struct {
	Service *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

// Search handles GET /api/parking/search. Coordinates take precedence over
// the free-text query; the response is always 200, even when upstream lookups
// fail (soft-fail contract).
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	radius := float64(service.DefaultRadiusKm)
	if raw := r.URL.Query().Get("radius"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			radius = parsed
		}
	}

	var coords *entities.Coordinates
	rawLat := r.URL.Query().Get("lat")
	rawLng := r.URL.Query().Get("lng")
	if rawLat != "" && rawLng != "" {
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		lng, errLng := strconv.ParseFloat(rawLng, 64)
		if errLat == nil && errLng == nil {
			coords = &entities.Coordinates{Lat: lat, Lng: lng}
		}
	}

	result := h.Service.Search(r.Context(), q, coords, radius)
	writeJSON(w, http.StatusOK, SearchResponse{Locations: result.Locations, Source: result.Source})
}
