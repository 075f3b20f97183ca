package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// statusForError maps a domain error to an HTTP status and a caller-safe
// message. Unexpected errors become a 500 with the fallback message; the
// cause stays in the logs and never crosses the HTTP boundary.
func statusForError(err error, fallback string) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusBadRequest, conflictErr.Error()
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Error()
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		return http.StatusBadRequest, "Invalid email or password"
	}

	logger.Error("request failed", "error", err)
	return http.StatusInternalServerError, fallback
}
