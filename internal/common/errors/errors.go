// Package errors provides standardized error handling for the screening service.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeArtifactNotFound      ErrorCode = "ARTIFACT_NOT_FOUND"
	ErrCodeArtifactMalformed     ErrorCode = "ARTIFACT_MALFORMED"
	ErrCodeArtifactSchemaInvalid ErrorCode = "ARTIFACT_SCHEMA_INVALID"

	ErrCodeFeatureMissing    ErrorCode = "FEATURE_MISSING"
	ErrCodeInvalidSubmission ErrorCode = "INVALID_SUBMISSION"
	ErrCodeValueOutOfRange   ErrorCode = "VALUE_OUT_OF_RANGE"

	ErrCodePredictionFailed ErrorCode = "PREDICTION_FAILED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewArtifactNotFoundError creates a non-retryable artifact error. Fatal at startup.
func NewArtifactNotFoundError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArtifactNotFound,
		Message:   "Model artifact file not found",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewArtifactMalformedError creates a non-retryable artifact decode error.
func NewArtifactMalformedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArtifactMalformed,
		Message:   "Model artifact could not be decoded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewArtifactSchemaInvalidError creates a non-retryable schema validation error.
func NewArtifactSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeArtifactSchemaInvalid,
		Message:   "Model artifact failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeatureMissingError creates a non-retryable feature contract error.
func NewFeatureMissingError(feature string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeatureMissing,
		Message:   "Submission is missing a model feature",
		Details:   fmt.Sprintf("feature: %s", feature),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidSubmissionError creates a non-retryable submission parse error.
func NewInvalidSubmissionError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidSubmission,
		Message:   "Submission could not be parsed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValueOutOfRangeError creates a non-retryable widget bounds error.
func NewValueOutOfRangeError(field string, value float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeValueOutOfRange,
		Message:   "Submitted value is outside the allowed range",
		Details:   fmt.Sprintf("field: %s, value: %g", field, value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPredictionFailedError creates a non-retryable inference error.
func NewPredictionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePredictionFailed,
		Message:   "Classifier inference failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP response statuses.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeArtifactNotFound:      http.StatusServiceUnavailable,
	ErrCodeArtifactMalformed:     http.StatusServiceUnavailable,
	ErrCodeArtifactSchemaInvalid: http.StatusServiceUnavailable,
	ErrCodeFeatureMissing:        http.StatusBadRequest,
	ErrCodeInvalidSubmission:     http.StatusBadRequest,
	ErrCodeValueOutOfRange:       http.StatusBadRequest,
	ErrCodePredictionFailed:      http.StatusInternalServerError,
	ErrCodeInternal:              http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error, defaulting to 500.
func HTTPStatus(err error) int {
	if stdErr, ok := err.(*StandardError); ok {
		if status, exists := HTTPStatusMapping[stdErr.Code]; exists {
			return status
		}
	}
	return http.StatusInternalServerError
}

// Normalize ensures any error is represented as a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}

// ==========================
// 4. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "ARTIFACT"):
		return "ARTIFACT"
	case strings.Contains(codeStr, "FEATURE") || strings.Contains(codeStr, "SUBMISSION") || strings.Contains(codeStr, "RANGE"):
		return "SUBMISSION"
	case strings.Contains(codeStr, "PREDICTION"):
		return "INFERENCE"
	default:
		return "OTHER"
	}
}
