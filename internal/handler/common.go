package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/leolimasa/leolang/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithDetails sends an error response carrying the underlying error text
func respondWithDetails(w http.ResponseWriter, code int, message string, err error) {
	details := []string{err.Error()}
	respondWithJSON(w, code, ErrorResponse{Error: message, Details: &details})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// bodyLimit bounds a request body carrying a source of at most maxSource
// bytes, leaving room for JSON escaping and the other fields.
func bodyLimit(maxSource int64) int64 {
	return 6*maxSource + 4<<10
}

// decodeJSON reads at most limit bytes of the request body into dst,
// answering 413 when the body is larger and 400 on any other failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// handleError handles common error cases
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithDetails(w, http.StatusBadRequest, "Invalid input", err)
	case errors.Is(err, domain.ErrSourceTooLarge):
		respondWithDetails(w, http.StatusRequestEntityTooLarge, "Source too large", err)
	case errors.Is(err, domain.ErrParseFailed):
		respondWithDetails(w, http.StatusUnprocessableEntity, "Source could not be parsed", err)
	case errors.Is(err, domain.ErrSnapshotNotFound), errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Snapshot not found")
	case errors.Is(err, domain.ErrSnapshotExists):
		respondWithError(w, http.StatusConflict, "Snapshot already exists")
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
