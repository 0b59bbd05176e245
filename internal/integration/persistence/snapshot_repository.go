// Package persistence implements the snapshot storage and the in-memory
// application state over it.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotStore interface over the
// two-slot snapshots table.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot store instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotStore {
	return &snapshotRepository{
		db: db,
	}
}

// Load reads the primary snapshot, initializing and persisting the default
// snapshot when none exists yet.
func (r *snapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	var snapshotModel model.SnapshotModel
	result := r.db.WithContext(ctx).Where("slot = ?", model.SlotPrimary).First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			snapshot := entity.NewDefaultSnapshot()
			if err := r.Save(ctx, snapshot); err != nil {
				return nil, err
			}
			return snapshot, nil
		}
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to read snapshot",
			result.Error,
		)
	}

	snapshot, err := snapshotModel.ToEntity()
	if err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeCorruptState,
			"persisted snapshot failed schema validation",
			errors.Join(domainerror.ErrCorruptState, err),
		)
	}

	return snapshot, nil
}

// Save writes the snapshot to the primary slot. The row is replaced in a
// single statement, so a failed write leaves the previous snapshot intact.
func (r *snapshotRepository) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotModel, err := model.SnapshotFromEntity(model.SlotPrimary, snapshot)
	if err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to encode snapshot",
			errors.Join(domainerror.ErrStorageWrite, err),
		)
	}

	if err := r.db.WithContext(ctx).Save(snapshotModel).Error; err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to write snapshot",
			errors.Join(domainerror.ErrStorageWrite, err),
		)
	}
	return nil
}

// CreateBackup copies the primary slot into the backup slot, stamped with the
// backup timestamp. The payload is re-encoded so a later restore carries the
// timestamp, not just the backup row. Without a primary snapshot there is
// nothing to back up and the call is a no-op.
func (r *snapshotRepository) CreateBackup(ctx context.Context) error {
	var primary model.SnapshotModel
	result := r.db.WithContext(ctx).Where("slot = ?", model.SlotPrimary).First(&primary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to read snapshot for backup",
			result.Error,
		)
	}

	snapshot, err := primary.ToEntity()
	if err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeCorruptState,
			"persisted snapshot failed schema validation before backup",
			errors.Join(domainerror.ErrCorruptState, err),
		)
	}
	snapshot.LastBackup = time.Now().UTC()

	backup, err := model.SnapshotFromEntity(model.SlotBackup, snapshot)
	if err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to encode backup snapshot",
			errors.Join(domainerror.ErrStorageWrite, err),
		)
	}

	if err := r.db.WithContext(ctx).Save(backup).Error; err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to write backup snapshot",
			errors.Join(domainerror.ErrStorageWrite, err),
		)
	}
	return nil
}

// RestoreFromBackup overwrites the primary slot with the backup. A missing
// backup returns (nil, nil); the primary snapshot is left untouched.
func (r *snapshotRepository) RestoreFromBackup(ctx context.Context) (*entity.Snapshot, error) {
	var backup model.SnapshotModel
	result := r.db.WithContext(ctx).Where("slot = ?", model.SlotBackup).First(&backup)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to read backup snapshot",
			result.Error,
		)
	}

	snapshot, err := backup.ToEntity()
	if err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeCorruptState,
			"backup snapshot failed schema validation",
			errors.Join(domainerror.ErrCorruptState, err),
		)
	}

	primary := backup
	primary.Slot = model.SlotPrimary
	if err := r.db.WithContext(ctx).Save(&primary).Error; err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageWrite,
			"failed to restore snapshot",
			errors.Join(domainerror.ErrStorageWrite, err),
		)
	}

	return snapshot, nil
}
