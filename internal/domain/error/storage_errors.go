// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Storage domain errors.
var (
	// ErrCorruptState is returned when the persisted snapshot fails schema
	// validation on load. It must never be silently swallowed; the caller
	// decides whether to fall back to a default snapshot.
	ErrCorruptState = errors.New("persisted snapshot is corrupt")

	// ErrStorageWrite is returned when the durable write fails. The previous
	// persisted snapshot stays intact and in-memory state is retained.
	ErrStorageWrite = errors.New("failed to write snapshot to storage")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeCorruptState StorageErrorCode = "STO-020001"
	ErrCodeStorageWrite StorageErrorCode = "STO-020002"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
