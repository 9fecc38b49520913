package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leggiero/spotmap/internal/middleware"
)

// logOnce runs one request through the SlogLogger middleware wrapped around
// a handler that answers with status and body, and returns the parsed line.
func logOnce(t *testing.T, status int, body string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/locations?id=3", nil)
	req.RemoteAddr = "203.0.113.7:51234"

	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, status, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestSlogLogger_logsRequestFields verifies that the SlogLogger middleware
// writes a structured JSON log line with the request's fields.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := logOnce(t, http.StatusOK, `{"id":3}`)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/locations", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 8, entry["bytes"])
	assert.Equal(t, "203.0.113.7:51234", entry["remote_addr"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

// TestSlogLogger_serverErrorLoggedAtErrorLevel verifies that 5xx responses
// stand out in the log stream.
func TestSlogLogger_serverErrorLoggedAtErrorLevel(t *testing.T) {
	entry := logOnce(t, http.StatusInternalServerError, "")

	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
}

// TestSlogLogger_clientErrorLoggedAtInfo verifies that 4xx responses, which
// are the caller's fault, do not raise the level.
func TestSlogLogger_clientErrorLoggedAtInfo(t *testing.T) {
	entry := logOnce(t, http.StatusUnprocessableEntity, "")

	assert.Equal(t, "INFO", entry["level"])
}
