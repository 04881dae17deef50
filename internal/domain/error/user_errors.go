// Package error defines domain-specific errors for the Fitness Partner application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when no active user matches the reference.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the phone number is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidWeight is returned when the weight is outside 30-300 kg.
	ErrInvalidWeight = errors.New("weight must be between 30 and 300 kg")

	// ErrInvalidHeight is returned when the height is outside 100-250 cm.
	ErrInvalidHeight = errors.New("height must be between 100 and 250 cm")

	// ErrInvalidDateOfBirth is returned when the date of birth is not in the past.
	ErrInvalidDateOfBirth = errors.New("date of birth must be in the past")

	// ErrInvalidGender is returned when the gender is not a known category.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidActivityLevel is returned when the activity level is not a known tier.
	ErrInvalidActivityLevel = errors.New("invalid activity level")

	// ErrInvalidGoalType is returned when the goal type is not a known category.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrCalorieGoalOutOfRange is returned when the computed daily goal falls
	// outside the user-facing 1000-5000 kcal range.
	ErrCalorieGoalOutOfRange = errors.New("daily calorie goal must be between 1000 and 5000")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound          UserErrorCode = "USR-010001"
	ErrCodeUserAlreadyExists     UserErrorCode = "USR-010002"
	ErrCodeInvalidWeight         UserErrorCode = "USR-010003"
	ErrCodeInvalidHeight         UserErrorCode = "USR-010004"
	ErrCodeInvalidDateOfBirth    UserErrorCode = "USR-010005"
	ErrCodeInvalidGender         UserErrorCode = "USR-010006"
	ErrCodeInvalidActivityLevel  UserErrorCode = "USR-010007"
	ErrCodeInvalidGoalType       UserErrorCode = "USR-010008"
	ErrCodeCalorieGoalOutOfRange UserErrorCode = "USR-010009"
	ErrCodeMissingUserFields     UserErrorCode = "USR-010010"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
