package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/karthik2365/Travel-diaries/internal/geo"
	"github.com/karthik2365/Travel-diaries/internal/lookup"
)

// routeResponse carries an ordered polyline in latitude/longitude order.
type routeResponse struct {
	Points []geo.Coordinate `json:"points"`
}

// GetRoute handles GET /api/v1/route?fromLat=&fromLng=&toLat=&toLng=.
// On lookup failure the client keeps whatever path it had drawn before.
func (s *Server) GetRoute(w http.ResponseWriter, r *http.Request) {
	from, err1 := parseCoordinate(r, "fromLat", "fromLng")
	to, err2 := parseCoordinate(r, "toLat", "toLng")
	if err := errors.Join(err1, err2); err != nil {
		s.respondValidation(w, "fromLat, fromLng, toLat, and toLng must be valid numbers")
		return
	}

	// One-shot, no retry: cancelled with the request if the client goes away.
	task := lookup.Start(r.Context(), func(ctx context.Context) ([]geo.Coordinate, error) {
		return s.routes.Fetch(ctx, from, to)
	})
	defer task.Cancel()

	points, err := task.Wait(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, routeResponse{Points: points})
}

// Locate handles GET /api/v1/locate.
// One-shot geolocation of the caller; failure yields a human-readable reason.
func (s *Server) Locate(w http.ResponseWriter, r *http.Request) {
	// RemoteAddr has been rewritten by the RealIP middleware where possible.
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	task := lookup.Start(r.Context(), func(ctx context.Context) (geo.Coordinate, error) {
		return s.locator.Locate(ctx, ip)
	})
	defer task.Cancel()

	coord, err := task.Wait(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, coord)
}

// parseCoordinate reads a lat/lng pair from the query string.
func parseCoordinate(r *http.Request, latKey, lngKey string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get(latKey), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get(lngKey), 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, nil
}

// parseBudget reads a non-negative budget value from a query parameter.
func parseBudget(raw string) (float64, error) {
	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if budget < 0 {
		return 0, strconv.ErrRange
	}
	return budget, nil
}
