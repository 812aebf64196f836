package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "parkhub/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service errors to responses. HTTPError messages are
// user-safe and pass through; anything else becomes a generic 500 so internal
// detail never leaks to the client.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, ErrorResponse{Error: httpErr.Message})
		return
	}
	log.Printf("Unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback})
}
