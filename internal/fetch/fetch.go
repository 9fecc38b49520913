// Package fetch performs JSON requests against the spot map API and turns
// its error bodies into typed errors.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/validate"
)

// ErrInvalidResponse marks a 2xx response whose body failed its schema check.
var ErrInvalidResponse = errors.New("invalid response")

// maxErrorBody bounds how much of a non-2xx body is read while looking for
// the error object.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response. Code, Message and Param come from the
// {"error":{...}} body when the server sent one.
type APIError struct {
	Status  int
	Code    string
	Message string
	Param   string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s: %s", e.Status, e.Code, e.Message)
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Param   string `json:"param"`
	} `json:"error"`
}

// Do sends req and decodes a 2xx JSON body into T. The decoded value is then
// checked against its `validate` tags, so a response missing required fields
// fails here rather than deeper in the caller.
//
// A non-2xx response yields *APIError. Transport, decoding and validation
// failures are wrapped and returned; nothing is retried.
func Do[T any](ctx context.Context, client *http.Client, req *http.Request) (T, error) {
	var zero T

	req = req.WithContext(ctx)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("fetch.Do: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, decodeAPIError(resp)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("fetch.Do: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	if err := validate.Struct(out); err != nil {
		return zero, fmt.Errorf("fetch.Do: %s %s: %w: %w", req.Method, req.URL.Path, ErrInvalidResponse, err)
	}
	return out, nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
		apiErr.Param = body.Error.Param
	}
	return apiErr
}

// UserError reports whether err is something the user can fix: a
// validation_error response from the API, or a validation failure raised
// locally. Such errors come back as a *domain.ValidationError naming the
// field. Anything else is logged as a notification and reported as false.
func UserError(logger *slog.Logger, err error) (*domain.ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == "validation_error" {
		return domain.NewValidationError(apiErr.Param, apiErr.Message), true
	}

	// A response that failed its schema check is the server's fault.
	if ve, ok := domain.AsValidationError(err); ok && !errors.Is(err, ErrInvalidResponse) {
		return ve, true
	}

	logger.Warn("request failed", "error", err)
	return nil, false
}
