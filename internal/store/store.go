// Package store holds the authoritative in-memory trip collection backed by
// a durable snapshot. Every mutation rewrites the entire persisted snapshot;
// reads serve copies of the in-memory state.
//
// Persistence failures never lose in-memory state: the store degrades to
// memory-only operation and reports the condition through Health.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/snapshot"
)

// TripStore is the single authoritative collection of trips.
//
// The original application mutated this collection from one UI thread; here
// handlers run concurrently, so an RWMutex serializes mutations instead.
type TripStore struct {
	mu    sync.RWMutex
	trips []domain.Trip

	snap snapshot.Store
	log  *slog.Logger

	// lastErr records the most recent persistence failure, nil when healthy.
	lastErr error

	// now and newID are swappable for tests.
	now   func() time.Time
	newID func() uuid.UUID
}

// Health describes the store's persistence state. OK is false while the
// store is operating memory-only after a load or save failure; Err then
// wraps domain.ErrSnapshotCorrupt or domain.ErrPersistenceUnavailable.
type Health struct {
	OK  bool
	Err error
}

// New constructs a TripStore and loads the persisted snapshot.
//
// A missing snapshot starts the store empty. A snapshot that exists but does
// not parse surfaces as domain.ErrSnapshotCorrupt through Health; the store
// starts empty and keeps operating, and the next successful save overwrites
// the corrupt data.
func New(ctx context.Context, snap snapshot.Store, log *slog.Logger) *TripStore {
	s := &TripStore{
		snap:  snap,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}

	data, err := snap.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		// First run: nothing persisted yet.
	case err != nil:
		s.lastErr = fmt.Errorf("%w: %w", domain.ErrPersistenceUnavailable, err)
		log.Warn("snapshot load failed, starting memory-only", "error", err)
	default:
		var trips []domain.Trip
		if err := json.Unmarshal(data, &trips); err != nil {
			s.lastErr = fmt.Errorf("%w: %w", domain.ErrSnapshotCorrupt, err)
			log.Warn("snapshot corrupt, starting empty", "error", err)
		} else {
			s.trips = trips
		}
	}

	return s
}

// Health reports the current persistence state.
func (s *TripStore) Health() Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Health{OK: s.lastErr == nil, Err: s.lastErr}
}

// List returns a copy of all trips in creation order.
func (s *TripStore) List(ctx context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = cloneTrip(t)
	}
	return out, nil
}

// Get returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripStore) Get(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Get: %w", domain.ErrNotFound)
	}
	return cloneTrip(s.trips[i]), nil
}

// Create assigns a new ID, empty place and budget lists, and a creation
// timestamp, appends the trip to the collection, and persists the snapshot.
// The caller's ID, CreatedAt, Places, and Budget fields are ignored.
func (s *TripStore) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip.ID = s.newID()
	trip.CreatedAt = s.now()
	trip.Places = []domain.Place{}
	trip.Budget = []domain.BudgetItem{}

	s.trips = append(s.trips, trip)
	s.persist(ctx)

	return cloneTrip(trip), nil
}

// Update merges the non-nil fields of patch into the matching trip and
// persists the snapshot. Returns domain.ErrNotFound if the ID is absent.
func (s *TripStore) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Update: %w", domain.ErrNotFound)
	}

	t := &s.trips[i]
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Destination != nil {
		t.Destination = *patch.Destination
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.CoverImage != nil {
		t.CoverImage = patch.CoverImage
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.TotalBudget != nil {
		t.TotalBudget = *patch.TotalBudget
	}
	if patch.Currency != nil {
		t.Currency = *patch.Currency
	}

	s.persist(ctx)
	return cloneTrip(*t), nil
}

// Delete removes the trip and, with it, all of its places and budget items.
// The removal is atomic: children are unreachable as soon as the trip is.
// Returns domain.ErrNotFound if the ID is absent.
func (s *TripStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("store.TripStore.Delete: %w", domain.ErrNotFound)
	}

	s.trips = append(s.trips[:i], s.trips[i+1:]...)
	s.persist(ctx)
	return nil
}

// AddPlace assigns a new ID to place, appends it to the trip's place list,
// and persists the snapshot.
func (s *TripStore) AddPlace(ctx context.Context, tripID uuid.UUID, place domain.Place) (domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(tripID)
	if i < 0 {
		return domain.Place{}, fmt.Errorf("store.TripStore.AddPlace: %w", domain.ErrNotFound)
	}

	place.ID = s.newID()
	s.trips[i].Places = append(s.trips[i].Places, place)
	s.persist(ctx)
	return place, nil
}

// RemovePlace removes the matching place from the trip.
// Returns domain.ErrNotFound if either the trip or the place is absent.
func (s *TripStore) RemovePlace(ctx context.Context, tripID, placeID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(tripID)
	if i < 0 {
		return fmt.Errorf("store.TripStore.RemovePlace: %w", domain.ErrNotFound)
	}

	places := s.trips[i].Places
	for j, p := range places {
		if p.ID == placeID {
			s.trips[i].Places = append(places[:j], places[j+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return fmt.Errorf("store.TripStore.RemovePlace: %w", domain.ErrNotFound)
}

// AddBudgetItem assigns a new ID to item, appends it to the trip's budget
// list, and persists the snapshot. The item's currency is expected to have
// been copied from the trip by the caller.
func (s *TripStore) AddBudgetItem(ctx context.Context, tripID uuid.UUID, item domain.BudgetItem) (domain.BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(tripID)
	if i < 0 {
		return domain.BudgetItem{}, fmt.Errorf("store.TripStore.AddBudgetItem: %w", domain.ErrNotFound)
	}

	item.ID = s.newID()
	s.trips[i].Budget = append(s.trips[i].Budget, item)
	s.persist(ctx)
	return item, nil
}

// RemoveBudgetItem removes the matching budget item from the trip.
// Returns domain.ErrNotFound if either the trip or the item is absent.
func (s *TripStore) RemoveBudgetItem(ctx context.Context, tripID, itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(tripID)
	if i < 0 {
		return fmt.Errorf("store.TripStore.RemoveBudgetItem: %w", domain.ErrNotFound)
	}

	budget := s.trips[i].Budget
	for j, b := range budget {
		if b.ID == itemID {
			s.trips[i].Budget = append(budget[:j], budget[j+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return fmt.Errorf("store.TripStore.RemoveBudgetItem: %w", domain.ErrNotFound)
}

// index returns the position of the trip with the given ID, or -1.
// Callers must hold the mutex.
func (s *TripStore) index(id uuid.UUID) int {
	for i, t := range s.trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist serializes the entire collection and overwrites the snapshot.
// An emptied collection is persisted too: the original app skipped the write
// when the list became empty, which resurrected deleted trips on the next
// load. That quirk is deliberately fixed here.
//
// On failure the in-memory state is kept and the store degrades to
// memory-only operation; a later successful write restores health.
// Callers must hold the mutex for writing.
func (s *TripStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.trips)
	if err != nil {
		// Only unmarshalable values can fail here; domain types never are.
		s.lastErr = fmt.Errorf("%w: %w", domain.ErrPersistenceUnavailable, err)
		s.log.Error("snapshot marshal failed", "error", err)
		return
	}

	if err := s.snap.Save(ctx, data); err != nil {
		s.lastErr = fmt.Errorf("%w: %w", domain.ErrPersistenceUnavailable, err)
		s.log.Warn("snapshot save failed, continuing memory-only", "error", err)
		return
	}

	s.lastErr = nil
}

// cloneTrip returns a deep copy so callers cannot alias the store's slices.
func cloneTrip(t domain.Trip) domain.Trip {
	out := t
	out.Places = make([]domain.Place, len(t.Places))
	copy(out.Places, t.Places)
	out.Budget = make([]domain.BudgetItem, len(t.Budget))
	copy(out.Budget, t.Budget)
	return out
}
