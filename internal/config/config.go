// Package config loads and validates application configuration from environment variables.
package config

import (
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SnapshotPath is where the file-backed snapshot store writes the trip
	// collection. Defaults to "data/trips.json". Ignored when RedisURL is set.
	SnapshotPath string

	// RedisURL, when non-empty, switches snapshot persistence to Redis
	// (e.g. "redis://localhost:6379/0"). Optional.
	RedisURL string

	// OSRMURL is the base URL of the OSRM-compatible directions service.
	// Defaults to the public router.
	OSRMURL string

	// GeoIPURL is the base URL of the ip-api-compatible geolocation service.
	// Defaults to the public endpoint.
	GeoIPURL string
}

// Load reads configuration from environment variables and returns a Config.
// Every value has a usable default; there are no required variables.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SnapshotPath: getEnv("SNAPSHOT_PATH", "data/trips.json"),
		RedisURL:     os.Getenv("REDIS_URL"),
		OSRMURL:      getEnv("OSRM_URL", "https://router.project-osrm.org"),
		GeoIPURL:     getEnv("GEOIP_URL", "http://ip-api.com/json"),
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
