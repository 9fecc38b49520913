package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers GET with a stored location (id 1 only) and echoes POST
// bodies back as a created location.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("id") != "1" {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"error":{"code":"not_found","message":"location not found"}}`)
				return
			}
			_, _ = io.WriteString(w, `{"id":1,"name":"Rifugio","lat":46,"lng":8,"type":"adventure"}`)
		case http.MethodPost:
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			out := map[string]any{"id": 2, "name": in["name"], "lat": in["lat"], "lng": in["lng"], "type": in["type"]}
			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(out))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Get(t *testing.T) {
	srv := fakeAPI(t)

	code, out, _ := runCLI(t, "-addr", srv.URL, "get", "-id", "1")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"name": "Rifugio"`)
}

func TestRun_GetNotFound(t *testing.T) {
	srv := fakeAPI(t)

	code, _, errOut := runCLI(t, "-addr", srv.URL, "get", "-id", "7")

	assert.Equal(t, exitRejected, code)
	assert.Contains(t, errOut, "location not found")
}

func TestRun_GetRequiresID(t *testing.T) {
	code, _, errOut := runCLI(t, "get")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "-id is required")
}

func TestRun_Create(t *testing.T) {
	srv := fakeAPI(t)

	code, out, _ := runCLI(t, "-addr", srv.URL, "create", "-name", "Bivacco", "-lat", "0", "-lng", "9.5", "-type", "leggiero")

	require.Equal(t, exitOK, code)
	var loc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &loc))
	assert.EqualValues(t, 2, loc["id"])
	assert.EqualValues(t, 0, loc["lat"])
	assert.Equal(t, "leggiero", loc["type"])
}

func TestRun_CreateMissingField(t *testing.T) {
	srv := fakeAPI(t)

	code, _, errOut := runCLI(t, "-addr", srv.URL, "create", "-name", "Bivacco", "-lat", "1")

	assert.Equal(t, exitRejected, code)
	assert.Contains(t, errOut, "lng: Missing `lng`")
}

func TestRun_CreateBadNumber(t *testing.T) {
	code, _, _ := runCLI(t, "create", "-name", "x", "-lat", "north", "-lng", "1")

	assert.Equal(t, exitUsage, code)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "delete")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown command "delete"`)
}

func TestRun_ServerDown(t *testing.T) {
	srv := fakeAPI(t)
	addr := srv.URL
	srv.Close()

	code, _, errOut := runCLI(t, "-addr", addr, "get", "-id", "1")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "request failed")
}
