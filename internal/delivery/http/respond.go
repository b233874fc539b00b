package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arabyads/influencer-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encoding failed", "error", err.Error())
	}
}

// writeError maps domain errors onto HTTP statuses. Validation failures keep
// their per-field structure; everything unrecognized is a 500 with a generic
// body so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	if verr, ok := domain.IsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Fields})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	default:
		slog.Error("request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		verr := domain.NewValidationError()
		verr.Add("body", "request body must be valid JSON")
		return verr
	}
	return nil
}
