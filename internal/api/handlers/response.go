package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dheerajjx/portfolio/internal/api/middleware"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorStatus maps a domain error to its HTTP status and public message.
func errorStatus(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidOTP):
		return http.StatusUnauthorized, "Invalid OTP"
	case errors.Is(err, domain.ErrOTPExpired):
		return http.StatusUnauthorized, "OTP expired"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Not authorized"
	case errors.Is(err, domain.ErrEmailDelivery):
		return http.StatusBadGateway, "Email could not be sent"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeError is the only place handlers turn an error into a response.
func writeError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		args := []any{"method", r.Method, "path", r.URL.Path, "error", err}
		if email := middleware.GetEmail(r.Context()); email != "" {
			args = append(args, "admin", email)
		}
		logger.Error(r.Context(), "request failed", args...)
	}
	writeJSON(w, status, ErrorResponse{Message: message})
}

// pathID parses the {id} URL parameter. Malformed ids cannot match any
// document, so they are reported as not found.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}
