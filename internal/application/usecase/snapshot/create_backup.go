// Package snapshot contains use cases around the durable snapshot slots.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// CreateBackupInput represents the input for creating a backup.
type CreateBackupInput struct{}

// CreateBackupOutput represents the output of creating a backup.
type CreateBackupOutput struct {
	BackupAt time.Time
}

// CreateBackupUseCase copies the primary snapshot slot into the backup slot.
type CreateBackupUseCase struct {
	stateManager adapter.StateManager
	store        adapter.SnapshotStore
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(stateManager adapter.StateManager, store adapter.SnapshotStore) *CreateBackupUseCase {
	return &CreateBackupUseCase{
		stateManager: stateManager,
		store:        store,
	}
}

// Execute flushes pending in-memory changes and then copies the primary slot
// into the backup slot, so the backup reflects the state the caller sees.
func (uc *CreateBackupUseCase) Execute(ctx context.Context, _ CreateBackupInput) (*CreateBackupOutput, error) {
	if err := uc.stateManager.ForceSave(ctx); err != nil {
		return nil, fmt.Errorf("failed to flush state before backup: %w", err)
	}

	if err := uc.store.CreateBackup(ctx); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}

	return &CreateBackupOutput{
		BackupAt: time.Now().UTC(),
	}, nil
}
