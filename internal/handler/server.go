// Package handler implements the HTTP surface of the Travel Diaries API.
// Handlers translate HTTP to service calls and map domain errors onto the
// JSON error envelope; no business logic lives here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/karthik2365/Travel-diaries/internal/domain"
	"github.com/karthik2365/Travel-diaries/internal/geo"
	"github.com/karthik2365/Travel-diaries/internal/service"
	"github.com/karthik2365/Travel-diaries/internal/store"
)

// TripServicer is the trip service surface the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlace(ctx context.Context, tripID uuid.UUID, place domain.Place) (domain.Place, error)
	RemovePlace(ctx context.Context, tripID, placeID uuid.UUID) error
	AddBudgetItem(ctx context.Context, tripID uuid.UUID, item domain.BudgetItem) (domain.BudgetItem, error)
	RemoveBudgetItem(ctx context.Context, tripID, itemID uuid.UUID) error
	Summarize(ctx context.Context, id uuid.UUID) (service.Summary, error)
	Health() store.Health
}

// Exporter is the export service surface the handlers depend on.
type Exporter interface {
	Export(ctx context.Context) ([]service.ExportRow, error)
}

// RouteFetcher fetches a driving polyline between two coordinates.
type RouteFetcher interface {
	Fetch(ctx context.Context, from, to geo.Coordinate) ([]geo.Coordinate, error)
}

// Locator resolves the caller's IP address to a coordinate.
type Locator interface {
	Locate(ctx context.Context, ip string) (geo.Coordinate, error)
}

// compile-time checks against the real implementations.
var _ TripServicer = (*service.TripService)(nil)
var _ Exporter = (*service.ExportService)(nil)

// Server bundles the dependencies shared by all handlers.
type Server struct {
	trips   TripServicer
	export  Exporter
	routes  RouteFetcher
	locator Locator
	log     *slog.Logger
}

// NewServer constructs a Server with the given dependencies.
func NewServer(trips TripServicer, export Exporter, routes RouteFetcher, locator Locator, log *slog.Logger) *Server {
	return &Server{trips: trips, export: export, routes: routes, locator: locator, log: log}
}

// Routes returns the chi router for the full API surface.
// Cross-cutting middleware (logging, CORS, rate limiting) is wired by the
// caller so tests can mount the bare routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Patch("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Get("/summary", s.GetTripSummary)
				r.Post("/places", s.AddPlace)
				r.Delete("/places/{placeID}", s.RemovePlace)
				r.Post("/budget", s.AddBudgetItem)
				r.Delete("/budget/{itemID}", s.RemoveBudgetItem)
			})
		})

		r.Get("/cities", s.ListCities)
		r.Get("/distance", s.GetDistance)
		r.Get("/recommendations", s.GetRecommendations)
		r.Get("/route", s.GetRoute)
		r.Get("/locate", s.Locate)
		r.Get("/export", s.Export)
	})

	return r
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}
