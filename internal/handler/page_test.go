package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leggiero/spotmap/internal/domain"
)

func listing(locs ...domain.Location) *mockLocationServicer {
	return &mockLocationServicer{
		list: func(_ context.Context) ([]domain.Location, error) { return locs, nil },
	}
}

func TestGetIndex_RendersMarkers(t *testing.T) {
	svc := listing(
		locationFixture(),
		domain.Location{ID: 43, Name: "Bivacco <Rosso>", Lat: 46.0, Lng: 7.5, Type: strPtr("leggiero")},
	)

	rec := doGet(newHTTPHandler(svc), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	html := rec.Body.String()
	assert.Contains(t, html, "FeatureCollection")
	assert.Contains(t, html, "Lago Nero")
	assert.Contains(t, html, "/static/mountain-pin.svg")
	assert.Contains(t, html, "/static/leggiero-pin.svg")
	assert.Contains(t, html, "(2 on the map)")
	// Names are script data, never raw markup.
	assert.NotContains(t, html, "<Rosso>")
}

func TestGetIndex_EmptyStore(t *testing.T) {
	rec := doGet(newHTTPHandler(listing()), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "(0 on the map)")
}

func TestGetIndex_StoreError_Returns500(t *testing.T) {
	svc := &mockLocationServicer{
		list: func(_ context.Context) ([]domain.Location, error) {
			return nil, errors.New("relation \"locations\" does not exist")
		},
	}

	rec := doGet(newHTTPHandler(svc), "/")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec).Error.Code)
}

func TestStatic_ServesIcons(t *testing.T) {
	for _, name := range []string{"location-pin.svg", "leggiero-pin.svg", "mountain-pin.svg"} {
		t.Run(name, func(t *testing.T) {
			rec := doGet(newHTTPHandler(listing()), "/static/"+name)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			body, err := io.ReadAll(rec.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "<svg")
		})
	}
}

func TestStatic_UnknownFile_Returns404(t *testing.T) {
	rec := doGet(newHTTPHandler(listing()), "/static/nope.png")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOpenAPI(t *testing.T) {
	rec := doGet(newHTTPHandler(listing()), "/openapi.yaml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/api/locations")
}
