package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leggiero/spotmap/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

const devOrigin = "http://localhost:5173"

func corsRequest(method, origin string) *httptest.ResponseRecorder {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)
	req := httptest.NewRequest(method, "/api/locations", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestCORSHandler_GET_AllowedOrigin verifies that a GET from an allowed origin
// receives the Access-Control-Allow-Origin header in the response.
func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	rec := corsRequest(http.MethodGet, devOrigin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a request from a
// disallowed origin does NOT receive the Access-Control-Allow-Origin header.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	rec := corsRequest(http.MethodGet, "http://evil.example.com")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_Preflight verifies the preflight a browser sends before
// posting JSON, and that methods the API does not serve are refused.
func TestCORSHandler_Preflight(t *testing.T) {
	tests := []struct {
		method  string
		allowed bool
	}{
		{http.MethodPost, true},
		{http.MethodGet, true},
		{http.MethodDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

			req := httptest.NewRequest(http.MethodOptions, "/api/locations", nil)
			req.Header.Set("Origin", devOrigin)
			req.Header.Set("Access-Control-Request-Method", tt.method)
			// Browsers send Access-Control-Request-Headers in lowercase.
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if tt.allowed {
				assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
					"expected 2xx for preflight, got %d", rec.Code)
				assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
