// Package error defines domain-specific errors for the Fitness Partner application.
package error

import "errors"

// Daily goal domain errors.
var (
	// ErrDailyGoalNotFound is returned when no aggregate exists for the date.
	ErrDailyGoalNotFound = errors.New("daily goal not found")

	// ErrDailyGoalConflict is returned when a concurrent insert for the same
	// (user, date) lost the race against the unique constraint.
	ErrDailyGoalConflict = errors.New("daily goal already exists for this date")

	// ErrInvalidCalorieCredit is returned when a non-positive calorie amount
	// is applied to the aggregate.
	ErrInvalidCalorieCredit = errors.New("calories to add must be positive")

	// ErrInvalidHistoryDays is returned when the history window is not positive.
	ErrInvalidHistoryDays = errors.New("history days must be positive")
)

// DailyGoalErrorCode defines error codes for daily goal errors.
// Format: DGL-XXYYYY where XX is category and YYYY is specific error.
type DailyGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDailyGoalNotFound    DailyGoalErrorCode = "DGL-010001"
	ErrCodeInvalidCalorieCredit DailyGoalErrorCode = "DGL-010002"
	ErrCodeInvalidHistoryDays   DailyGoalErrorCode = "DGL-010003"

	// Concurrency errors (02XXXX)
	ErrCodeDailyGoalConflict DailyGoalErrorCode = "DGL-020001"
)

// DailyGoalError represents a daily goal error with code and message.
type DailyGoalError struct {
	Code    DailyGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DailyGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DailyGoalError) Unwrap() error {
	return e.Err
}

// NewDailyGoalError creates a new DailyGoalError with the given code and message.
func NewDailyGoalError(code DailyGoalErrorCode, message string, err error) *DailyGoalError {
	return &DailyGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
