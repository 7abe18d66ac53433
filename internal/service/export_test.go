package service_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/service"
	"github.com/karthik2365/Travel-diaries/internal/snapshot"
	"github.com/karthik2365/Travel-diaries/internal/store"
)

func newTestExportService(t *testing.T) (*service.TripService, *service.ExportService) {
	t.Helper()
	snap := snapshot.NewFileStore(filepath.Join(t.TempDir(), "trips.json"))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New(context.Background(), snap, log)
	return service.NewTripService(s), service.NewExportService(s)
}

func TestExport_EmptyCollection(t *testing.T) {
	_, export := newTestExportService(t)

	rows, err := export.Export(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExport_OneRowPerPlace(t *testing.T) {
	trips, export := newTestExportService(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, validTrip())
	require.NoError(t, err)

	_, err = trips.AddPlace(ctx, created.ID, domain.Place{Name: "Louvre", Lat: 48.8606, Lng: 2.3376})
	require.NoError(t, err)
	_, err = trips.AddPlace(ctx, created.ID, domain.Place{Name: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945})
	require.NoError(t, err)

	rows, err := export.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, created.ID.String(), rows[0].TripID)
	assert.Equal(t, "Louvre", rows[0].PlaceName)
	require.NotNil(t, rows[0].PlaceLat)
	assert.Equal(t, 48.8606, *rows[0].PlaceLat)
	assert.Equal(t, "Eiffel Tower", rows[1].PlaceName)
}

// A trip without places still shows up in the export, with empty place
// fields.
func TestExport_PlacelessTripContributesOneRow(t *testing.T) {
	trips, export := newTestExportService(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, validTrip())
	require.NoError(t, err)

	rows, err := export.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, created.ID.String(), rows[0].TripID)
	assert.Empty(t, rows[0].PlaceName)
	assert.Nil(t, rows[0].PlaceLat)
	assert.Nil(t, rows[0].PlaceLng)
}

func TestExport_SpentIsDerivedPerTrip(t *testing.T) {
	trips, export := newTestExportService(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, validTrip())
	require.NoError(t, err)

	_, err = trips.AddBudgetItem(ctx, created.ID, domain.BudgetItem{
		Category: domain.CategoryTransport, Description: "Metro pass", Amount: 35.5,
	})
	require.NoError(t, err)

	rows, err := export.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 35.5, rows[0].Spent)
}
