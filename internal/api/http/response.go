package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
)

// messageResponse carries the user-facing outcome of a mutation.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorResponse reports a failed request. Input echoes what was submitted so
// the caller can redisplay its form.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Input  any               `json:"input,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps the domain error classes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error, notFoundMsg string, input any) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: ve.Fields,
			Input:  input,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrStorage):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "Error uploading image", Input: input})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Input: input})
	}
}
