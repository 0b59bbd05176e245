package persistence

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestAppStateMutateAndForceSave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// A long debounce window keeps the timer from firing during the test, so
	// durability below is attributable to ForceSave alone.
	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	goal := populatedSnapshot().Goals[0]
	err = state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Goals = append(snapshot.Goals, goal)
		return true
	})
	if err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if got := state.Snapshot(); len(got.Goals) != 1 {
		t.Fatalf("in-memory snapshot has %d goals, want 1", len(got.Goals))
	}

	if err := state.ForceSave(ctx); err != nil {
		t.Fatalf("ForceSave() error = %v", err)
	}

	persisted, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(persisted.Goals) != 1 || persisted.Goals[0].ID != goal.ID {
		t.Error("ForceSave must persist the mutated state")
	}
}

func TestAppStateDebouncedWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	goal := populatedSnapshot().Goals[0]
	if err := state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Goals = append(snapshot.Goals, goal)
		return true
	}); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		persisted, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(persisted.Goals) == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced write did not reach the store in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAppStateSnapshotIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	before := state.Snapshot()

	goal := populatedSnapshot().Goals[0]
	if err := state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Goals = append(snapshot.Goals, goal)
		return true
	}); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if len(before.Goals) != 0 {
		t.Error("snapshots handed to readers must not see later mutations")
	}
	if len(state.Snapshot().Goals) != 1 {
		t.Error("new snapshot must see the mutation")
	}
}

func TestAppStateMutateRestampsLastUpdated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	before := state.Snapshot().LastUpdated
	time.Sleep(time.Millisecond)

	if err := state.Mutate(ctx, func(*entity.Snapshot) bool { return true }); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if after := state.Snapshot().LastUpdated; !after.After(before) {
		t.Errorf("LastUpdated = %v, want later than %v", after, before)
	}
}

func TestAppStateMutateUnchangedKeepsLastUpdated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	before := state.Snapshot().LastUpdated
	time.Sleep(time.Millisecond)

	if err := state.Mutate(ctx, func(*entity.Snapshot) bool { return false }); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if after := state.Snapshot().LastUpdated; !after.Equal(before) {
		t.Errorf("LastUpdated = %v, want unchanged %v", after, before)
	}
}

func TestAppStateSnapshotMapIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	before := state.Snapshot()

	if err := state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Settings["currency"] = "BRL"
		snapshot.Profile.Preferences["theme"] = "dark"
		return true
	}); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if _, ok := before.Settings["currency"]; ok {
		t.Error("settings map handed to readers must not see later mutations")
	}
	if _, ok := before.Profile.Preferences["theme"]; ok {
		t.Error("preferences map handed to readers must not see later mutations")
	}

	// Readers iterate their copies while mutations keep writing; shared map
	// storage here is a fatal concurrent map read/write.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = state.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
				snapshot.Settings[strconv.Itoa(i)] = i
				snapshot.Profile.Preferences[strconv.Itoa(i)] = i
				return true
			})
		}
	}()
	for i := 0; i < 200; i++ {
		snapshot := state.Snapshot()
		for range snapshot.Settings {
		}
		for range snapshot.Profile.Preferences {
		}
	}
	<-done
}
