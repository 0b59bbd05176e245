package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/application/usecase/snapshot"
)

// SnapshotInfoResponse represents the snapshot metadata without the payload.
type SnapshotInfoResponse struct {
	Version      int        `json:"version"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	LastBackup   *time.Time `json:"lastBackup,omitempty"`
	Transactions int        `json:"transactions"`
	Goals        int        `json:"goals"`
}

// BackupResponse represents the response of a backup request.
type BackupResponse struct {
	BackupAt time.Time `json:"backupAt"`
}

// RestoreResponse represents the response of a restore request.
type RestoreResponse struct {
	Restored bool                  `json:"restored"`
	Snapshot *SnapshotInfoResponse `json:"snapshot,omitempty"`
}

// ToSnapshotInfoResponse converts snapshot metadata to its DTO.
func ToSnapshotInfoResponse(output *snapshot.GetSnapshotInfoOutput) SnapshotInfoResponse {
	response := SnapshotInfoResponse{
		Version:      output.Version,
		LastUpdated:  output.LastUpdated,
		Transactions: output.Transactions,
		Goals:        output.Goals,
	}
	if !output.LastBackup.IsZero() {
		lastBackup := output.LastBackup
		response.LastBackup = &lastBackup
	}
	return response
}
