package snapshot

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// GetSnapshotInfoInput represents the input for reading snapshot metadata.
type GetSnapshotInfoInput struct{}

// GetSnapshotInfoOutput represents the output of reading snapshot metadata.
type GetSnapshotInfoOutput struct {
	Version      int
	LastUpdated  time.Time
	LastBackup   time.Time
	Transactions int
	Goals        int
}

// GetSnapshotInfoUseCase exposes snapshot metadata without the payload.
type GetSnapshotInfoUseCase struct {
	stateManager adapter.StateManager
}

// NewGetSnapshotInfoUseCase creates a new GetSnapshotInfoUseCase instance.
func NewGetSnapshotInfoUseCase(stateManager adapter.StateManager) *GetSnapshotInfoUseCase {
	return &GetSnapshotInfoUseCase{
		stateManager: stateManager,
	}
}

// Execute reads the current snapshot metadata.
func (uc *GetSnapshotInfoUseCase) Execute(_ context.Context, _ GetSnapshotInfoInput) (*GetSnapshotInfoOutput, error) {
	snapshot := uc.stateManager.Snapshot()

	return &GetSnapshotInfoOutput{
		Version:      snapshot.Version,
		LastUpdated:  snapshot.LastUpdated,
		LastBackup:   snapshot.LastBackup,
		Transactions: len(snapshot.Transactions),
		Goals:        len(snapshot.Goals),
	}, nil
}
