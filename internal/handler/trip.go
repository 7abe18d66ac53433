package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
)

// tripID parses the {tripID} URL parameter. The second return value is false
// when the parameter is not a valid UUID; a 422 has then already been written.
func (s *Server) tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.respondValidation(w, "invalid trip id")
		return uuid.Nil, false
	}
	return id, true
}

// CreateTrip handles POST /api/v1/trips.
// The response carries the assigned ID, which the caller uses to navigate to
// the trip's detail view.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		s.respondValidation(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /api/v1/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	s.writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /api/v1/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /api/v1/trips/{tripID}.
// Only the fields present in the body are merged into the trip.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.tripID(w, r)
	if !ok {
		return
	}

	var patch domain.TripPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.respondValidation(w, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, patch)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/v1/trips/{tripID}.
// The trip's places and budget items are removed with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := s.tripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripSummary handles GET /api/v1/trips/{tripID}/summary.
func (s *Server) GetTripSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := s.tripID(w, r)
	if !ok {
		return
	}

	summary, err := s.trips.Summarize(r.Context(), id)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}
