package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"loveuadAdmin/internal/repository"
	"loveuadAdmin/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteError writes {"error": message} with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// writeServiceError maps service and repository errors onto HTTP statuses.
// Anything unrecognised is a 500 carrying the error text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrUnauthorized):
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, service.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrStorageDisabled):
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}

// decodeJSON reads a JSON body into dst and runs struct validation.
func (h *Handlers) decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	if err := h.Validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// tooLong reports the first field that failed a max length rule.
func tooLong(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "", false
	}
	for _, fe := range verrs {
		if fe.Tag() == "max" {
			return fmt.Sprintf("%s is too long (max %s)", fe.Field(), fe.Param()), true
		}
	}
	return "", false
}
