// Package snapshot persists the serialized trip collection as a single
// durable document. The store reads the snapshot once at startup and
// rewrites the whole document after every mutation; there are no
// incremental or delta writes.
//
// Two backends are provided: FileStore (one JSON file on disk, the
// localStorage analog) and RedisStore (one key in Redis).
package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no snapshot has been written yet.
// It is a normal first-run condition, not a failure.
var ErrNotFound = errors.New("snapshot: not found")

// Store reads and writes the single persisted snapshot.
// Implementations must treat the payload as opaque bytes.
type Store interface {
	// Load returns the current snapshot, or ErrNotFound if none exists.
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the snapshot with data.
	Save(ctx context.Context, data []byte) error
}
