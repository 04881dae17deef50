// Package error defines domain-specific errors for the Fitness Partner application.
package error

import "errors"

// Meal domain errors.
var (
	// ErrMealNotFound is returned when a meal is not found in the system.
	ErrMealNotFound = errors.New("meal not found")

	// ErrMissingCalories is returned when a meal is registered without a
	// calorie value and no AI estimation was requested.
	ErrMissingCalories = errors.New("calories must be provided")

	// ErrInvalidCalories is returned when the calorie value is outside 1-5000.
	ErrInvalidCalories = errors.New("calories must be between 1 and 5000")

	// ErrInvalidDescription is returned when the description length is outside
	// 3-500 characters.
	ErrInvalidDescription = errors.New("description must be between 3 and 500 characters")

	// ErrInvalidMealType is returned when the meal type is not a known slot.
	ErrInvalidMealType = errors.New("invalid meal type")

	// ErrNegativeMacro is returned when a macro gram value is negative.
	ErrNegativeMacro = errors.New("macro values cannot be negative")

	// ErrDailyLimitExceeded is returned when the per-day meal cap is reached.
	ErrDailyLimitExceeded = errors.New("daily meal limit exceeded")

	// ErrMealDoesNotBelongToUser is returned when a meal is accessed by a
	// different user than its owner.
	ErrMealDoesNotBelongToUser = errors.New("meal does not belong to user")
)

// MealErrorCode defines error codes for meal errors.
// Format: MEL-XXYYYY where XX is category and YYYY is specific error.
type MealErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMealNotFound       MealErrorCode = "MEL-010001"
	ErrCodeMissingCalories    MealErrorCode = "MEL-010002"
	ErrCodeInvalidCalories    MealErrorCode = "MEL-010003"
	ErrCodeInvalidDescription MealErrorCode = "MEL-010004"
	ErrCodeInvalidMealType    MealErrorCode = "MEL-010005"
	ErrCodeNegativeMacro      MealErrorCode = "MEL-010006"
	ErrCodeMissingMealFields  MealErrorCode = "MEL-010007"

	// Business rule errors (02XXXX)
	ErrCodeDailyLimitExceeded      MealErrorCode = "MEL-020001"
	ErrCodeMealDoesNotBelongToUser MealErrorCode = "MEL-020002"
)

// MealError represents a meal error with code and message.
type MealError struct {
	Code    MealErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MealError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MealError) Unwrap() error {
	return e.Err
}

// NewMealError creates a new MealError with the given code and message.
func NewMealError(code MealErrorCode, message string, err error) *MealError {
	return &MealError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
