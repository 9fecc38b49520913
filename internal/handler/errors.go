package handler

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/leggiero/spotmap/internal/domain"
)

// Error codes carried in errorDetail.Code.
const (
	codeNotFound        = "not_found"
	codeValidation      = "validation_error"
	codeBadRequest      = "bad_request"
	codePayloadTooLarge = "payload_too_large"
	codeInternal        = "internal_error"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail describes what went wrong. Param names the offending field
// for validation errors and is omitted otherwise.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // status already sent
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeNotFound returns 404. The caller supplies the message because the
// handler is the layer that knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

// writeValidation returns 422 with the field that failed.
func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
		Code:    codeValidation,
		Message: ve.Reason,
		Param:   ve.Param,
	}})
}

// writeInternal logs err and returns a 500 that does not leak the cause.
func (s *Server) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}
