package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/snapshot"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// SnapshotController handles snapshot metadata, backup and restore endpoints.
type SnapshotController struct {
	infoUseCase    *snapshot.GetSnapshotInfoUseCase
	backupUseCase  *snapshot.CreateBackupUseCase
	restoreUseCase *snapshot.RestoreBackupUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(
	infoUseCase *snapshot.GetSnapshotInfoUseCase,
	backupUseCase *snapshot.CreateBackupUseCase,
	restoreUseCase *snapshot.RestoreBackupUseCase,
) *SnapshotController {
	return &SnapshotController{
		infoUseCase:    infoUseCase,
		backupUseCase:  backupUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Info handles GET /snapshot requests.
func (c *SnapshotController) Info(ctx *gin.Context) {
	output, err := c.infoUseCase.Execute(ctx.Request.Context(), snapshot.GetSnapshotInfoInput{})
	if err != nil {
		c.handleStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotInfoResponse(output))
}

// Backup handles POST /snapshot/backup requests.
func (c *SnapshotController) Backup(ctx *gin.Context) {
	output, err := c.backupUseCase.Execute(ctx.Request.Context(), snapshot.CreateBackupInput{})
	if err != nil {
		c.handleStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BackupResponse{
		BackupAt: output.BackupAt,
	})
}

// Restore handles POST /snapshot/restore requests. A missing backup yields a
// Restored=false response, not an error.
func (c *SnapshotController) Restore(ctx *gin.Context) {
	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), snapshot.RestoreBackupInput{})
	if err != nil {
		c.handleStorageError(ctx, err)
		return
	}

	response := dto.RestoreResponse{Restored: output.Restored}
	if output.Restored {
		info := dto.SnapshotInfoResponse{
			Version:      output.Snapshot.Version,
			LastUpdated:  output.Snapshot.LastUpdated,
			Transactions: len(output.Snapshot.Transactions),
			Goals:        len(output.Snapshot.Goals),
		}
		if !output.Snapshot.LastBackup.IsZero() {
			lastBackup := output.Snapshot.LastBackup
			info.LastBackup = &lastBackup
		}
		response.Snapshot = &info
	}

	ctx.JSON(http.StatusOK, response)
}

// handleStorageError handles storage errors and returns appropriate HTTP
// responses.
func (c *SnapshotController) handleStorageError(ctx *gin.Context, err error) {
	var storageErr *domainerror.StorageError
	if errors.As(err, &storageErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: storageErr.Message,
			Code:  string(storageErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
