// Package locate performs the one-shot "where am I" lookup. The production
// implementation asks an ip-api.com-shaped geolocation endpoint for the
// caller's IP; failure yields a human-readable reason and affects nothing
// but the requesting feature.
package locate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/geo"
)

const (
	defaultBaseURL = "http://ip-api.com/json"
	httpTimeout    = 10 * time.Second
)

// Client resolves an IP address to a coordinate.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client against the public ip-api endpoint.
func NewClient() *Client {
	return NewClientWithURL(defaultBaseURL)
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// ipAPIResponse is the subset of the ip-api JSON payload we decode.
type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves ip to a coordinate. An empty ip asks the endpoint about
// the requesting host. All failures wrap domain.ErrLookupFailed with a
// human-readable reason.
func (c *Client) Locate(ctx context.Context, ip string) (geo.Coordinate, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(ip) + "?fields=status,message,lat,lon"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("locate.Client.Locate: %w: %w", domain.ErrLookupFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("locate.Client.Locate: %w: unable to retrieve your location: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Coordinate{}, fmt.Errorf("locate.Client.Locate: %w: status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	var raw ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return geo.Coordinate{}, fmt.Errorf("locate.Client.Locate: %w: decoding response: %w", domain.ErrLookupFailed, err)
	}

	if raw.Status != "success" {
		reason := raw.Message
		if reason == "" {
			reason = "unable to retrieve your location"
		}
		return geo.Coordinate{}, fmt.Errorf("locate.Client.Locate: %w: %s", domain.ErrLookupFailed, reason)
	}

	return geo.Coordinate{Lat: raw.Lat, Lng: raw.Lon}, nil
}
