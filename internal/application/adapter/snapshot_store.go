// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// SnapshotStore defines the interface for the durable, versioned snapshot
// slots (primary and backup).
type SnapshotStore interface {
	// Load reads the primary snapshot. If none exists yet, it initializes and
	// persists the default snapshot. A snapshot that fails schema validation
	// yields a coded corrupt-state error, never a coerced result.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Save writes the snapshot to the primary slot. A failed write leaves the
	// previously persisted snapshot intact.
	Save(ctx context.Context, snapshot *entity.Snapshot) error

	// CreateBackup copies the primary slot verbatim into the backup slot,
	// stamped with a backup timestamp.
	CreateBackup(ctx context.Context) error

	// RestoreFromBackup overwrites the primary slot with the backup and
	// returns the restored snapshot. A missing backup returns (nil, nil);
	// callers treat it as a normal, non-error outcome.
	RestoreFromBackup(ctx context.Context) (*entity.Snapshot, error)
}

// StateManager owns the in-memory snapshot cache: the single source of truth
// during a session and the sole writer back to the snapshot store.
type StateManager interface {
	// Snapshot returns a copy of the snapshot whose collections and maps
	// share no storage with later mutations.
	Snapshot() *entity.Snapshot

	// Mutate applies fn to the in-memory snapshot under the state lock. When
	// fn reports a change, lastUpdated is re-stamped and a debounced durable
	// write is scheduled; a false return leaves the snapshot untouched.
	Mutate(ctx context.Context, fn func(snapshot *entity.Snapshot) bool) error

	// ForceSave flushes any pending debounced write immediately.
	ForceSave(ctx context.Context) error
}
