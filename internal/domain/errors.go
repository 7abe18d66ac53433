package domain

import "errors"

// ErrNotFound is returned by store and service functions when the addressed
// trip, place, or budget item does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrSnapshotCorrupt is reported by the store when the persisted snapshot
// exists but cannot be parsed. The store starts empty and keeps operating
// in-memory; the error is surfaced through its health report.
var ErrSnapshotCorrupt = errors.New("snapshot corrupt")

// ErrPersistenceUnavailable is reported by the store when writing the
// snapshot fails. In-memory state is never lost; the store degrades to
// memory-only operation until a later write succeeds.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// ErrLookupFailed is returned by the routing and geolocation clients when an
// external request fails. It is terminal for that request only and never
// propagates into the trip store.
var ErrLookupFailed = errors.New("external lookup failed")
