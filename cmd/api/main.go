// Package main is the entry point for the Travel Diaries API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/karthik2365/Travel-diaries/internal/config"
	"github.com/karthik2365/Travel-diaries/internal/handler"
	"github.com/karthik2365/Travel-diaries/internal/locate"
	"github.com/karthik2365/Travel-diaries/internal/middleware"
	"github.com/karthik2365/Travel-diaries/internal/route"
	"github.com/karthik2365/Travel-diaries/internal/service"
	"github.com/karthik2365/Travel-diaries/internal/snapshot"
	"github.com/karthik2365/Travel-diaries/internal/store"
)

// maxBodyBytes caps incoming request bodies. Trip payloads are small; 1 MiB
// leaves generous headroom for cover image URLs and long descriptions.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Snapshot persistence --------------------------------------------
	// The trip collection lives in one durable snapshot: a Redis key when
	// REDIS_URL is set, a local JSON file otherwise.
	var snapStore snapshot.Store
	if cfg.RedisURL != "" {
		client, err := snapshot.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()
		snapStore = snapshot.NewRedisStore(client)
		slog.Info("snapshot persistence: redis")
	} else {
		snapStore = snapshot.NewFileStore(cfg.SnapshotPath)
		slog.Info("snapshot persistence: file", "path", cfg.SnapshotPath)
	}

	// --- Store and services ----------------------------------------------
	// The store loads the snapshot now and degrades to memory-only if it is
	// unavailable or corrupt; /healthz reports the condition.
	trips := store.New(context.Background(), snapStore, logger)
	if h := trips.Health(); !h.OK {
		slog.Warn("store starting degraded", "error", h.Err)
	}

	tripService := service.NewTripService(trips)
	exportService := service.NewExportService(trips)
	routeClient := route.NewClientWithURL(cfg.OSRMURL)
	locateClient := locate.NewClientWithURL(cfg.GeoIPURL)

	srv := handler.NewServer(tripService, exportService, routeClient, locateClient, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → rate limit → body cap. Request volume is bounded by direct
	// user interaction, so 60 requests per minute per IP is ample.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(httprate.LimitByIP(60, time.Minute))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
