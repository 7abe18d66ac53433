package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
)

// AddBudgetItem handles POST /api/v1/trips/{tripID}/budget.
// An omitted currency inherits the trip's currency.
func (s *Server) AddBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.tripID(w, r)
	if !ok {
		return
	}

	var item domain.BudgetItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.respondValidation(w, "invalid request body")
		return
	}

	created, err := s.trips.AddBudgetItem(r.Context(), tripID, item)
	if err != nil {
		s.respondError(w, err, "trip not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// RemoveBudgetItem handles DELETE /api/v1/trips/{tripID}/budget/{itemID}.
func (s *Server) RemoveBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.tripID(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		s.respondValidation(w, "invalid budget item id")
		return
	}

	if err := s.trips.RemoveBudgetItem(r.Context(), tripID, itemID); err != nil {
		s.respondError(w, err, "budget item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
