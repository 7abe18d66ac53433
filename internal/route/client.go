// Package route fetches driving-route polylines from an OSRM-compatible
// directions service. A failed or unusable response is terminal for that
// request: there is no retry, and callers leave any previously drawn path
// untouched.
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/geo"
)

const (
	defaultBaseURL = "https://router.project-osrm.org"
	httpTimeout    = 10 * time.Second
)

// Client fetches route geometries from an OSRM-style HTTP endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client against the public OSRM router.
func NewClient() *Client {
	return NewClientWithURL(defaultBaseURL)
}

// NewClientWithURL constructs a Client pointing at a custom base URL
// (used in tests and for self-hosted routers).
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// osrmResponse is the subset of the OSRM route response we decode.
// Geometry coordinates arrive in longitude-then-latitude order.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Fetch requests the full driving geometry between from and to and returns
// it as an ordered sequence of coordinates in latitude/longitude order.
// All failures wrap domain.ErrLookupFailed.
func (c *Client) Fetch(ctx context.Context, from, to geo.Coordinate) ([]geo.Coordinate, error) {
	// OSRM takes coordinates as lon,lat pairs.
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("route.Client.Fetch: %w: %w", domain.ErrLookupFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route.Client.Fetch: %w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("route.Client.Fetch: %w: status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	var raw osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("route.Client.Fetch: %w: decoding response: %w", domain.ErrLookupFailed, err)
	}

	if raw.Code != "Ok" || len(raw.Routes) == 0 {
		return nil, fmt.Errorf("route.Client.Fetch: %w: no route (code %q)", domain.ErrLookupFailed, raw.Code)
	}

	coords := raw.Routes[0].Geometry.Coordinates
	points := make([]geo.Coordinate, len(coords))
	for i, pair := range coords {
		points[i] = geo.Coordinate{Lat: pair[1], Lng: pair[0]}
	}
	return points, nil
}
