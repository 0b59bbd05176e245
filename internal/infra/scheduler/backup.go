package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// backupSchedule fires at local midnight, giving one backup per 24 hours
// anchored to the start of the day.
const backupSchedule = "0 0 * * *"

// BackupScheduler copies the primary snapshot slot into the backup slot once
// a day.
type BackupScheduler struct {
	state adapter.StateManager
	store adapter.SnapshotStore
	cron  *cron.Cron
}

// NewBackupScheduler creates a scheduler over the given state and snapshot
// store.
func NewBackupScheduler(state adapter.StateManager, store adapter.SnapshotStore) *BackupScheduler {
	return &BackupScheduler{
		state: state,
		store: store,
		cron:  cron.New(),
	}
}

// Start registers the daily job and starts the cron loop in its own goroutine.
func (s *BackupScheduler) Start() error {
	_, err := s.cron.AddFunc(backupSchedule, s.runBackup)
	if err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("Backup scheduler started", "schedule", backupSchedule)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *BackupScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Backup scheduler stopped")
}

// runBackup flushes pending in-memory state first, so the copied primary slot
// includes mutations still inside the debounce window.
func (s *BackupScheduler) runBackup() {
	ctx := context.Background()
	if err := s.state.ForceSave(ctx); err != nil {
		slog.Warn("State flush before scheduled backup failed", "error", err)
		return
	}
	if err := s.store.CreateBackup(ctx); err != nil {
		slog.Warn("Scheduled backup failed", "error", err)
		return
	}
	slog.Info("Scheduled backup completed")
}
