package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
)

// AddPlace handles POST /api/v1/trips/{tripID}/places.
// The coordinate typically comes from a map click or an accepted prompt.
func (s *Server) AddPlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.tripID(w, r)
	if !ok {
		return
	}

	var place domain.Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		s.respondValidation(w, "invalid request body")
		return
	}

	created, err := s.trips.AddPlace(r.Context(), tripID, place)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// RemovePlace handles DELETE /api/v1/trips/{tripID}/places/{placeID}.
func (s *Server) RemovePlace(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.tripID(w, r)
	if !ok {
		return
	}

	placeID, err := uuid.Parse(chi.URLParam(r, "placeID"))
	if err != nil {
		s.respondValidation(w, "invalid place id")
		return
	}

	if err := s.trips.RemovePlace(r.Context(), tripID, placeID); err != nil {
		s.respondError(w, err, "place not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
