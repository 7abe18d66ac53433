package route_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/geo"
	"github.com/karthik2365/Travel-diaries/internal/route"
)

func TestFetch_ConvertsLonLatPairs(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"routes": [{"geometry": {"coordinates": [[2.3522, 48.8566], [-0.1278, 51.5074]]}}]
		}`))
	}))
	defer srv.Close()

	client := route.NewClientWithURL(srv.URL)
	points, err := client.Fetch(context.Background(),
		geo.Coordinate{Lat: 48.8566, Lng: 2.3522},
		geo.Coordinate{Lat: 51.5074, Lng: -0.1278})
	require.NoError(t, err)

	// The request path carries lon,lat; the response comes back lat/lng.
	assert.Contains(t, gotPath, "/route/v1/driving/2.352200,48.856600;-0.127800,51.507400")
	assert.Contains(t, gotQuery, "geometries=geojson")

	require.Len(t, points, 2)
	assert.Equal(t, geo.Coordinate{Lat: 48.8566, Lng: 2.3522}, points[0])
	assert.Equal(t, geo.Coordinate{Lat: 51.5074, Lng: -0.1278}, points[1])
}

func TestFetch_NonOkCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer srv.Close()

	_, err := route.NewClientWithURL(srv.URL).Fetch(context.Background(), geo.Coordinate{}, geo.Coordinate{})
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := route.NewClientWithURL(srv.URL).Fetch(context.Background(), geo.Coordinate{}, geo.Coordinate{})
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestFetch_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := route.NewClientWithURL(srv.URL).Fetch(context.Background(), geo.Coordinate{}, geo.Coordinate{})
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestFetch_RespectsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := route.NewClientWithURL(srv.URL).Fetch(ctx, geo.Coordinate{}, geo.Coordinate{})
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}
