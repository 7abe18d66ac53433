package service_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/service"
	"github.com/karthik2365/Travel-diaries/internal/snapshot"
	"github.com/karthik2365/Travel-diaries/internal/store"
)

// newTestService wires a TripService onto a real store with a throwaway
// file snapshot, mirroring the production wiring.
func newTestService(t *testing.T) *service.TripService {
	t.Helper()
	snap := snapshot.NewFileStore(filepath.Join(t.TempDir(), "trips.json"))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewTripService(store.New(context.Background(), snap, log))
}

func validTrip() domain.Trip {
	return domain.Trip{
		Name:        "Summer in Europe",
		Destination: "Paris",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-15",
		TotalBudget: 5000,
		Currency:    "USD",
	}
}

// ---- create ----------------------------------------------------------------

func TestCreate_Valid(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), validTrip())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreate_ValidationRules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := map[string]func(*domain.Trip){
		"empty name":        func(tr *domain.Trip) { tr.Name = "  " },
		"empty destination": func(tr *domain.Trip) { tr.Destination = "" },
		"negative budget":   func(tr *domain.Trip) { tr.TotalBudget = -1 },
		"empty currency":    func(tr *domain.Trip) { tr.Currency = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			trip := validTrip()
			mutate(&trip)
			_, err := svc.Create(ctx, trip)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// Zero is a valid budget; only negatives are rejected.
func TestCreate_ZeroBudgetAllowed(t *testing.T) {
	svc := newTestService(t)

	trip := validTrip()
	trip.TotalBudget = 0
	_, err := svc.Create(context.Background(), trip)
	assert.NoError(t, err)
}

// End before start is not rejected, matching the original application.
func TestCreate_EndBeforeStartAllowed(t *testing.T) {
	svc := newTestService(t)

	trip := validTrip()
	trip.StartDate = "2026-06-15"
	trip.EndDate = "2026-06-01"
	_, err := svc.Create(context.Background(), trip)
	assert.NoError(t, err)
}

// ---- update ----------------------------------------------------------------

func TestUpdate_PatchValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, created.ID, domain.TripPatch{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	negative := -10.0
	_, err = svc.Update(ctx, created.ID, domain.TripPatch{TotalBudget: &negative})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(t)

	name := "New Name"
	_, err := svc.Update(context.Background(), uuid.New(), domain.TripPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- places ----------------------------------------------------------------

func TestAddPlace_RequiresName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	_, err = svc.AddPlace(ctx, created.ID, domain.Place{Lat: 1, Lng: 2})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Coordinates are not range-checked anywhere; the map is trusted.
func TestAddPlace_AcceptsAnyCoordinates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	_, err = svc.AddPlace(ctx, created.ID, domain.Place{Name: "Weird", Lat: 9999, Lng: -9999})
	assert.NoError(t, err)
}

// ---- budget ----------------------------------------------------------------

func TestAddBudgetItem_ValidationRules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	cases := map[string]domain.BudgetItem{
		"unknown category":  {Category: "souvenirs", Description: "Magnet", Amount: 5},
		"empty description": {Category: domain.CategoryFood, Description: " ", Amount: 5},
		"zero amount":       {Category: domain.CategoryFood, Description: "Dinner", Amount: 0},
		"negative amount":   {Category: domain.CategoryFood, Description: "Dinner", Amount: -5},
	}

	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddBudgetItem(ctx, created.ID, item)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAddBudgetItem_InheritsTripCurrency(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	item, err := svc.AddBudgetItem(ctx, created.ID, domain.BudgetItem{
		Category: domain.CategoryFood, Description: "Dinner", Amount: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", item.Currency)
}

// Scenario from the budget tracker: 5000 total, one 120 food item.
func TestSummarize_BudgetScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTrip())
	require.NoError(t, err)

	_, err = svc.AddBudgetItem(ctx, created.ID, domain.BudgetItem{
		Category: domain.CategoryFood, Description: "Dinner", Amount: 120,
	})
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, summary.TotalBudget)
	assert.Equal(t, 120.0, summary.Spent)
	assert.Equal(t, 4880.0, summary.Remaining)
	assert.Equal(t, "USD", summary.Currency)
}

func TestSummarize_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Summarize(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
