// Package error defines domain-specific errors for the Fitness Partner application.
package error

import "errors"

// AI estimation domain errors.
var (
	// ErrEstimationFailed is returned when both the structured and the
	// degraded extraction tiers failed to produce an estimate.
	ErrEstimationFailed = errors.New("could not extract calorie information from AI response")

	// ErrAIUnavailable is returned when the AI service is not configured or
	// the generation call failed at the transport level.
	ErrAIUnavailable = errors.New("AI service unavailable")

	// ErrEmptyAIResponse is returned when the generation endpoint answered
	// with no text content.
	ErrEmptyAIResponse = errors.New("empty response from AI service")
)

// EstimationErrorCode defines error codes for AI estimation errors.
// Format: AIE-XXYYYY where XX is category and YYYY is specific error.
type EstimationErrorCode string

const (
	// Transport errors (01XXXX)
	ErrCodeAIUnavailable   EstimationErrorCode = "AIE-010001"
	ErrCodeEmptyAIResponse EstimationErrorCode = "AIE-010002"
	ErrCodeRateLimited     EstimationErrorCode = "AIE-010003"

	// Extraction and validation errors (02XXXX)
	ErrCodeEstimationFailed EstimationErrorCode = "AIE-020001"
	ErrCodeInvalidQuestion  EstimationErrorCode = "AIE-020002"
)

// EstimationError represents an AI estimation failure with code and message.
type EstimationError struct {
	Code    EstimationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EstimationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EstimationError) Unwrap() error {
	return e.Err
}

// NewEstimationError creates a new EstimationError with the given code and message.
func NewEstimationError(code EstimationErrorCode, message string, err error) *EstimationError {
	return &EstimationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
