package handler

import "net/http"

// healthResponse reports server liveness and persistence health.
// Status is "degraded" while the store is operating memory-only; the API
// keeps serving requests either way, so the response code stays 200.
type healthResponse struct {
	Status      string `json:"status"`
	Persistence string `json:"persistence,omitempty"`
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	health := s.trips.Health()
	if health.OK {
		s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:      "degraded",
		Persistence: health.Err.Error(),
	})
}
