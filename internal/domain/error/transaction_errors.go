// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is not income or expense.
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

	// ErrEmptyTransactionCategory is returned when the category is empty.
	ErrEmptyTransactionCategory = errors.New("transaction category must not be empty")

	// ErrMissingTransactionDate is returned when the date is missing.
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound      TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TRX-010002"
	ErrCodeEmptyTransactionCategory TransactionErrorCode = "TRX-010003"
	ErrCodeMissingTransactionDate   TransactionErrorCode = "TRX-010004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TRX-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
