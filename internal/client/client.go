// Package client is a typed Go client for the spot map HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/fetch"
	"github.com/leggiero/spotmap/internal/validate"
)

// Client talks to one spot map server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the server at baseURL, e.g. "http://localhost:8080".
// A nil httpClient gets one with a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetLocation fetches the location with the given id.
// A missing location surfaces as a *fetch.APIError with Status 404.
func (c *Client) GetLocation(ctx context.Context, id int64) (domain.Location, error) {
	u := c.baseURL + "/api/locations?" + url.Values{"id": {strconv.FormatInt(id, 10)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("client.GetLocation: %w", err)
	}
	return fetch.Do[domain.Location](ctx, c.httpClient, req)
}

// CreateLocation stores a new location and returns it with its assigned id.
// The input is checked locally first, so an obviously incomplete location
// fails with a *domain.ValidationError without a round trip.
func (c *Client) CreateLocation(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Location{}, fmt.Errorf("client.CreateLocation: %w", err)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return domain.Location{}, fmt.Errorf("client.CreateLocation: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/locations", bytes.NewReader(body))
	if err != nil {
		return domain.Location{}, fmt.Errorf("client.CreateLocation: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return fetch.Do[domain.Location](ctx, c.httpClient, req)
}
