package snapshot

import (
	"context"
	"fmt"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// RestoreBackupInput represents the input for restoring from backup.
type RestoreBackupInput struct{}

// RestoreBackupOutput represents the output of restoring from backup.
// Restored is false when no backup exists; that is a normal outcome, not an
// error, and Snapshot is nil in that case.
type RestoreBackupOutput struct {
	Restored bool
	Snapshot *entity.Snapshot
}

// RestoreBackupUseCase overwrites the primary slot with the backup slot and
// reloads the in-memory state from it.
type RestoreBackupUseCase struct {
	stateManager adapter.StateManager
	store        adapter.SnapshotStore
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(stateManager adapter.StateManager, store adapter.SnapshotStore) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		stateManager: stateManager,
		store:        store,
	}
}

// Execute performs the restore.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, _ RestoreBackupInput) (*RestoreBackupOutput, error) {
	restored, err := uc.store.RestoreFromBackup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore from backup: %w", err)
	}
	if restored == nil {
		return &RestoreBackupOutput{Restored: false}, nil
	}

	err = uc.stateManager.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		snapshot.Version = restored.Version
		snapshot.LastUpdated = restored.LastUpdated
		snapshot.LastBackup = restored.LastBackup
		snapshot.Transactions = restored.Transactions
		snapshot.Goals = restored.Goals
		snapshot.Profile = restored.Profile
		snapshot.Settings = restored.Settings
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reload state after restore: %w", err)
	}

	return &RestoreBackupOutput{
		Restored: true,
		Snapshot: restored,
	}, nil
}
