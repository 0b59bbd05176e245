package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// backupRecorder implements both StateManager and SnapshotStore, recording
// call order.
type backupRecorder struct {
	calls    []string
	flushErr error
}

func (r *backupRecorder) Snapshot() *entity.Snapshot { return entity.NewDefaultSnapshot() }

func (r *backupRecorder) Mutate(context.Context, func(snapshot *entity.Snapshot) bool) error {
	return nil
}

func (r *backupRecorder) ForceSave(context.Context) error {
	r.calls = append(r.calls, "flush")
	return r.flushErr
}

func (r *backupRecorder) Load(context.Context) (*entity.Snapshot, error) { return nil, nil }

func (r *backupRecorder) Save(context.Context, *entity.Snapshot) error { return nil }

func (r *backupRecorder) CreateBackup(context.Context) error {
	r.calls = append(r.calls, "backup")
	return nil
}

func (r *backupRecorder) RestoreFromBackup(context.Context) (*entity.Snapshot, error) {
	return nil, nil
}

func TestRunBackupFlushesStateFirst(t *testing.T) {
	recorder := &backupRecorder{}
	scheduler := NewBackupScheduler(recorder, recorder)

	scheduler.runBackup()

	if len(recorder.calls) != 2 || recorder.calls[0] != "flush" || recorder.calls[1] != "backup" {
		t.Errorf("calls = %v, want [flush backup]", recorder.calls)
	}
}

func TestRunBackupSkipsCopyAfterFailedFlush(t *testing.T) {
	recorder := &backupRecorder{flushErr: errors.New("disk full")}
	scheduler := NewBackupScheduler(recorder, recorder)

	scheduler.runBackup()

	if len(recorder.calls) != 1 || recorder.calls[0] != "flush" {
		t.Errorf("calls = %v, want [flush] only", recorder.calls)
	}
}
