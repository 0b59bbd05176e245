package persistence

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/infra/scheduler"
)

// AppState is the in-memory cache of the persisted snapshot: the single
// source of truth during a session and the sole writer back to the store.
// Mutations schedule a debounced durable write; a write failure keeps the
// optimistic in-memory state and is retried on the next trigger or ForceSave.
type AppState struct {
	mu       sync.Mutex
	store    adapter.SnapshotStore
	snapshot *entity.Snapshot
	saver    *scheduler.Debouncer
}

// NewAppState loads (or initializes) the snapshot from the store and wires
// the debounced auto-save.
func NewAppState(ctx context.Context, store adapter.SnapshotStore, debounceWindow time.Duration) (*AppState, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	state := &AppState{
		store:    store,
		snapshot: snapshot,
	}
	state.saver = scheduler.NewDebouncer(debounceWindow, func() {
		if err := state.persist(context.Background()); err != nil {
			slog.Warn("Debounced snapshot write failed, in-memory state retained", "error", err)
		}
	})

	return state, nil
}

// Snapshot returns a copy of the snapshot with the collection slices and the
// settings/preferences maps copied, so read paths share no storage with
// mutators. Handlers run concurrently; a reader iterating a map while a
// mutation writes it would be a fatal runtime throw.
func (s *AppState) Snapshot() *entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := *s.snapshot
	snapshot.Transactions = append([]*entity.Transaction(nil), s.snapshot.Transactions...)
	snapshot.Goals = append([]*entity.Goal(nil), s.snapshot.Goals...)
	snapshot.Settings = maps.Clone(s.snapshot.Settings)
	snapshot.Profile.Preferences = maps.Clone(s.snapshot.Profile.Preferences)
	return &snapshot
}

// Mutate applies fn to the in-memory snapshot under the state lock. When fn
// reports a change, lastUpdated is re-stamped and a debounced durable write
// is scheduled; otherwise the snapshot is left untouched.
func (s *AppState) Mutate(ctx context.Context, fn func(snapshot *entity.Snapshot) bool) error {
	s.mu.Lock()
	changed := fn(s.snapshot)
	if changed {
		s.snapshot.LastUpdated = time.Now().UTC()
	}
	s.mu.Unlock()

	if changed {
		s.saver.Trigger()
	}
	return nil
}

// ForceSave cancels any pending debounced write and persists immediately.
func (s *AppState) ForceSave(ctx context.Context) error {
	s.saver.Stop()
	return s.persist(ctx)
}

// Close flushes pending state on shutdown.
func (s *AppState) Close(ctx context.Context) error {
	return s.ForceSave(ctx)
}

func (s *AppState) persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(ctx, s.snapshot)
}
