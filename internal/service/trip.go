// Package service contains the business logic for the Travel Diaries API.
// Services validate inputs at the edge and orchestrate store calls; the
// store itself stays defensive but unvalidating. No persistence code lives
// here — services depend on the TripCollection interface, not the concrete
// store.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/store"
)

// TripCollection is the store surface the service depends on.
// *store.TripStore satisfies it; tests may substitute a double.
type TripCollection interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlace(ctx context.Context, tripID uuid.UUID, place domain.Place) (domain.Place, error)
	RemovePlace(ctx context.Context, tripID, placeID uuid.UUID) error
	AddBudgetItem(ctx context.Context, tripID uuid.UUID, item domain.BudgetItem) (domain.BudgetItem, error)
	RemoveBudgetItem(ctx context.Context, tripID, itemID uuid.UUID) error
	Health() store.Health
}

// compile-time check: the real store must satisfy TripCollection.
var _ TripCollection = (*store.TripStore)(nil)

// TripService implements business logic for trip, place, and budget
// operations.
type TripService struct {
	trips TripCollection
}

// NewTripService constructs a TripService backed by the provided collection.
func NewTripService(trips TripCollection) *TripService {
	return &TripService{trips: trips}
}

// Summary is the derived budget state of one trip. Spent and Remaining are
// recomputed from the budget list on every call.
type Summary struct {
	TotalBudget float64 `json:"totalBudget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	Currency    string  `json:"currency"`
}

// Create validates and stores a new trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.Get(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// Update validates the patch and merges it into an existing trip.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.trips.Update(ctx, id, patch)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and all of its places and budget items.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddPlace validates and attaches a place to a trip.
func (s *TripService) AddPlace(ctx context.Context, tripID uuid.UUID, place domain.Place) (domain.Place, error) {
	if strings.TrimSpace(place.Name) == "" {
		return domain.Place{}, fmt.Errorf("service.TripService.AddPlace: %w: name is required", domain.ErrValidation)
	}

	created, err := s.trips.AddPlace(ctx, tripID, place)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.TripService.AddPlace: %w", err)
	}
	return created, nil
}

// RemovePlace detaches a place from a trip.
func (s *TripService) RemovePlace(ctx context.Context, tripID, placeID uuid.UUID) error {
	if err := s.trips.RemovePlace(ctx, tripID, placeID); err != nil {
		return fmt.Errorf("service.TripService.RemovePlace: %w", err)
	}
	return nil
}

// AddBudgetItem validates and attaches a budget item to a trip. An empty
// currency inherits the trip's currency at creation time; it is not
// re-validated against the trip currency afterwards.
func (s *TripService) AddBudgetItem(ctx context.Context, tripID uuid.UUID, item domain.BudgetItem) (domain.BudgetItem, error) {
	if !domain.ValidCategory(item.Category) {
		return domain.BudgetItem{}, fmt.Errorf("service.TripService.AddBudgetItem: %w: unknown category %q", domain.ErrValidation, item.Category)
	}
	if strings.TrimSpace(item.Description) == "" {
		return domain.BudgetItem{}, fmt.Errorf("service.TripService.AddBudgetItem: %w: description is required", domain.ErrValidation)
	}
	if item.Amount <= 0 {
		return domain.BudgetItem{}, fmt.Errorf("service.TripService.AddBudgetItem: %w: amount must be positive", domain.ErrValidation)
	}

	if item.Currency == "" {
		trip, err := s.trips.Get(ctx, tripID)
		if err != nil {
			return domain.BudgetItem{}, fmt.Errorf("service.TripService.AddBudgetItem: %w", err)
		}
		item.Currency = trip.Currency
	}

	created, err := s.trips.AddBudgetItem(ctx, tripID, item)
	if err != nil {
		return domain.BudgetItem{}, fmt.Errorf("service.TripService.AddBudgetItem: %w", err)
	}
	return created, nil
}

// RemoveBudgetItem detaches a budget item from a trip.
func (s *TripService) RemoveBudgetItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.trips.RemoveBudgetItem(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.TripService.RemoveBudgetItem: %w", err)
	}
	return nil
}

// Summarize returns the derived budget summary for a trip.
func (s *TripService) Summarize(ctx context.Context, id uuid.UUID) (Summary, error) {
	trip, err := s.trips.Get(ctx, id)
	if err != nil {
		return Summary{}, fmt.Errorf("service.TripService.Summarize: %w", err)
	}

	return Summary{
		TotalBudget: trip.TotalBudget,
		Spent:       trip.Spent(),
		Remaining:   trip.Remaining(),
		Currency:    trip.Currency,
	}, nil
}

// Health reports the store's persistence state for the health endpoint.
func (s *TripService) Health() store.Health {
	return s.trips.Health()
}

// validateTrip checks the fields required to create a trip. End-before-start
// is deliberately not checked, matching the original application.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.TotalBudget < 0 {
		return fmt.Errorf("%w: totalBudget must not be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Currency) == "" {
		return fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	return nil
}

// validatePatch checks only the fields present in the patch.
func validatePatch(patch domain.TripPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if patch.Destination != nil && strings.TrimSpace(*patch.Destination) == "" {
		return fmt.Errorf("%w: destination must not be empty", domain.ErrValidation)
	}
	if patch.TotalBudget != nil && *patch.TotalBudget < 0 {
		return fmt.Errorf("%w: totalBudget must not be negative", domain.ErrValidation)
	}
	if patch.Currency != nil && strings.TrimSpace(*patch.Currency) == "" {
		return fmt.Errorf("%w: currency must not be empty", domain.ErrValidation)
	}
	return nil
}
