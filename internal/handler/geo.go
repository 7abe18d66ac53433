package handler

import (
	"net/http"

	"github.com/karthik2365/Travel-diaries/internal/geo"
	"github.com/karthik2365/Travel-diaries/internal/planner"
)

// ListCities handles GET /api/v1/cities.
// Returns the autocomplete list of known city names.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"cities": geo.CityNames()})
}

// distanceResponse reports a trip distance. Estimated is true when either
// endpoint failed to geocode and the value is a random display placeholder
// rather than a computed geodesic distance.
type distanceResponse struct {
	Km        float64 `json:"km"`
	Estimated bool    `json:"estimated"`
}

// GetDistance handles GET /api/v1/distance?from={city}&to={city}.
// Unknown city names fall back to a plausible placeholder distance, flagged
// as estimated.
func (s *Server) GetDistance(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		s.respondValidation(w, "from and to query parameters are required")
		return
	}

	km, estimated := geo.EstimateDistance(geo.Resolve(from), geo.Resolve(to))
	s.writeJSON(w, http.StatusOK, distanceResponse{Km: km, Estimated: estimated})
}

// recommendationsResponse bundles the generated hotel and activity listings.
type recommendationsResponse struct {
	Hotels     []planner.Hotel    `json:"hotels"`
	Activities []planner.Activity `json:"activities"`
}

// GetRecommendations handles GET /api/v1/recommendations?budget={amount}.
// The listings are a deterministic function of the budget value.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	budget, err := parseBudget(r.URL.Query().Get("budget"))
	if err != nil {
		s.respondValidation(w, "budget must be a non-negative number")
		return
	}

	s.writeJSON(w, http.StatusOK, recommendationsResponse{
		Hotels:     planner.Hotels(budget),
		Activities: planner.Activities(budget),
	})
}
