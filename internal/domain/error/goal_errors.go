// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty after trimming.
	ErrEmptyGoalTitle = errors.New("goal title must not be empty")

	// ErrInvalidTargetValue is returned when the target value is zero or negative.
	ErrInvalidTargetValue = errors.New("target value must be greater than zero")

	// ErrMissingGoalDeadline is returned when the goal end date is missing.
	ErrMissingGoalDeadline = errors.New("goal end date is required")

	// ErrInvalidGoalWindow is returned when the start date is after the end date.
	ErrInvalidGoalWindow = errors.New("goal start date must not be after end date")

	// ErrInvalidGoalType is returned when the goal type is not personal or business.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrGoalNotToggleable is returned when pausing or resuming a goal that is
	// completed or cancelled.
	ErrGoalNotToggleable = errors.New("goal cannot be paused or resumed")

	// ErrNegativeCurrentValue is returned when the current value is negative.
	ErrNegativeCurrentValue = errors.New("current value must not be negative")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeEmptyGoalTitle       GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetValue   GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalDeadline  GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalWindow    GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalType      GoalErrorCode = "GOL-010006"
	ErrCodeGoalNotToggleable    GoalErrorCode = "GOL-010007"
	ErrCodeNegativeCurrentValue GoalErrorCode = "GOL-010008"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010009"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
