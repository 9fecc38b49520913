package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/leggiero/spotmap/internal/domain"
)

// GetLocation handles GET /api/locations?id={id}.
// Without an id no row can match, so the response is the same 404 an
// unknown id gets.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("id") {
		writeNotFound(w, "location not found")
		return
	}

	var id int64
	if query.Get("id") == "" {
		writeValidation(w, domain.InvalidField("id"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "id", query, &id); err != nil {
		writeValidation(w, domain.InvalidField("id"))
		return
	}

	loc, err := s.locations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "location not found")
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loc)
}

// CreateLocation handles POST /api/locations.
func (s *Server) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var in domain.LocationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.locations.Create(r.Context(), in)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			writeValidation(w, ve)
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// writeDecodeError maps a request body decoding failure to a response.
// A value of the wrong JSON type is reported against its field; anything
// that is not a JSON object at all is a bad request.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codePayloadTooLarge, "request body too large")
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeValidation(w, domain.InvalidField(typeErr.Field))
		return
	}

	if errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body is required")
		return
	}
	writeError(w, http.StatusBadRequest, codeBadRequest, "malformed JSON body")
}
