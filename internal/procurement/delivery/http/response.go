package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/internal/procurement/schema"
	"github.com/emuhs/s2p-api/pkg/logger"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string              `json:"error" example:"supplier 1 not found"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// MessageResponse carries a plain status message
type MessageResponse struct {
	Message string `json:"message" example:"S2P System is Live"`
}

// statusFor maps an error to its HTTP status and client-facing body
func statusFor(err error) (int, ErrorResponse) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		duplicate  *domain.DuplicateError
		reference  *domain.ReferenceError
		conflict   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: validation.Fields}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Error: notFound.Error()}
	case errors.As(err, &duplicate):
		return http.StatusBadRequest, ErrorResponse{Error: duplicate.Error()}
	case errors.As(err, &reference):
		return http.StatusBadRequest, ErrorResponse{Error: reference.Error()}
	case errors.As(err, &conflict):
		return http.StatusConflict, ErrorResponse{Error: conflict.Error()}
	case errors.Is(err, schema.ErrMalformedBody):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid request body"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
	} else {
		logger.Debug(r.Context()).
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Msg("Request rejected")
	}
	respondJSON(w, status, body)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
