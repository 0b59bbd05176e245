package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// fakeStore is an in-memory SnapshotStore tracking the two slots.
type fakeStore struct {
	primary *entity.Snapshot
	backup  *entity.Snapshot
	saveErr error
}

func (s *fakeStore) Load(context.Context) (*entity.Snapshot, error) {
	if s.primary == nil {
		s.primary = entity.NewDefaultSnapshot()
	}
	return s.primary, nil
}

func (s *fakeStore) Save(_ context.Context, snapshot *entity.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.primary = snapshot
	return nil
}

func (s *fakeStore) CreateBackup(context.Context) error {
	if s.primary == nil {
		return nil
	}
	copied := *s.primary
	s.backup = &copied
	return nil
}

func (s *fakeStore) RestoreFromBackup(context.Context) (*entity.Snapshot, error) {
	if s.backup == nil {
		return nil, nil
	}
	copied := *s.backup
	s.primary = &copied
	return &copied, nil
}

// fakeState is a minimal StateManager whose flush just records the call.
type fakeState struct {
	snapshot   *entity.Snapshot
	forceSaves int
	mutations  int
}

func (s *fakeState) Snapshot() *entity.Snapshot {
	return s.snapshot
}

func (s *fakeState) Mutate(_ context.Context, fn func(snapshot *entity.Snapshot) bool) error {
	if fn(s.snapshot) {
		s.mutations++
	}
	return nil
}

func (s *fakeState) ForceSave(context.Context) error {
	s.forceSaves++
	return nil
}

func TestCreateBackupFlushesFirst(t *testing.T) {
	store := &fakeStore{primary: entity.NewDefaultSnapshot()}
	state := &fakeState{snapshot: store.primary}
	uc := NewCreateBackupUseCase(state, store)

	output, err := uc.Execute(context.Background(), CreateBackupInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if state.forceSaves != 1 {
		t.Errorf("forceSaves = %d, want 1 before backup", state.forceSaves)
	}
	if store.backup == nil {
		t.Error("backup slot must be written")
	}
	if output.BackupAt.IsZero() {
		t.Error("BackupAt must be stamped")
	}
}

func TestRestoreBackupReloadsState(t *testing.T) {
	backedUp := entity.NewDefaultSnapshot()
	backedUp.Profile.Name = "Maria"
	store := &fakeStore{primary: entity.NewDefaultSnapshot(), backup: backedUp}
	state := &fakeState{snapshot: entity.NewDefaultSnapshot()}
	uc := NewRestoreBackupUseCase(state, store)

	output, err := uc.Execute(context.Background(), RestoreBackupInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Restored {
		t.Fatal("Restored = false, want true with a backup present")
	}
	if state.mutations != 1 {
		t.Errorf("mutations = %d, want the state reloaded once", state.mutations)
	}
	if state.snapshot.Profile.Name != "Maria" {
		t.Error("in-memory state must reflect the restored snapshot")
	}
}

func TestRestoreBackupWithoutBackup(t *testing.T) {
	store := &fakeStore{primary: entity.NewDefaultSnapshot()}
	state := &fakeState{snapshot: store.primary}
	uc := NewRestoreBackupUseCase(state, store)

	output, err := uc.Execute(context.Background(), RestoreBackupInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil for a missing backup", err)
	}

	if output.Restored {
		t.Error("Restored = true, want false without a backup")
	}
	if output.Snapshot != nil {
		t.Error("Snapshot must be nil without a backup")
	}
	if state.mutations != 0 {
		t.Error("state must be untouched without a backup")
	}
}

func TestCreateBackupPropagatesFlushFailure(t *testing.T) {
	store := &fakeStore{primary: entity.NewDefaultSnapshot()}
	state := &failingState{}
	uc := NewCreateBackupUseCase(state, store)

	_, err := uc.Execute(context.Background(), CreateBackupInput{})
	if err == nil {
		t.Fatal("Execute() expected error when the flush fails")
	}
	if store.backup != nil {
		t.Error("backup must not run after a failed flush")
	}
}

type failingState struct{}

func (s *failingState) Snapshot() *entity.Snapshot { return entity.NewDefaultSnapshot() }

func (s *failingState) Mutate(context.Context, func(snapshot *entity.Snapshot) bool) error {
	return nil
}

func (s *failingState) ForceSave(context.Context) error {
	return errors.New("disk full")
}

func TestGetSnapshotInfo(t *testing.T) {
	snapshot := entity.NewDefaultSnapshot()
	snapshot.Goals = append(snapshot.Goals, &entity.Goal{})
	state := &fakeState{snapshot: snapshot}
	uc := NewGetSnapshotInfoUseCase(state)

	output, err := uc.Execute(context.Background(), GetSnapshotInfoInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Version != entity.SnapshotVersion {
		t.Errorf("Version = %d, want %d", output.Version, entity.SnapshotVersion)
	}
	if output.Goals != 1 || output.Transactions != 0 {
		t.Errorf("counts = %d goals / %d transactions, want 1 / 0", output.Goals, output.Transactions)
	}
}
