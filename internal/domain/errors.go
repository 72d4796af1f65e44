package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeValidation ErrorCode = "VALIDATION_ERROR"

	// Upload errors
	CodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"
	CodeExtractionError ErrorCode = "EXTRACTION_ERROR"

	// Provider errors
	CodeProviderError    ErrorCode = "PROVIDER_ERROR"
	CodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"

	// Quiz normalization errors
	CodeMalformedQuiz   ErrorCode = "MALFORMED_QUIZ"
	CodeSchemaViolation ErrorCode = "SCHEMA_VIOLATION"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches additional detail surfaced to the client in the
// error response's details field.
func (e *DomainError) WithContext(key string, value any) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewPayloadTooLargeError(message string) *DomainError {
	return NewError(CodePayloadTooLarge, message, nil)
}

func NewExtractionError(cause error) *DomainError {
	return NewError(CodeExtractionError, "Failed to extract text from PDF", cause)
}

func NewProviderError(cause error) *DomainError {
	return NewError(CodeProviderError, "Failed to get a response from the model provider", cause)
}

func NewModelUnavailableError(model string, cause error) *DomainError {
	return NewError(CodeModelUnavailable,
		fmt.Sprintf("Model %q is not available for this API key", model), cause).
		WithContext("model", model)
}

func NewMalformedQuizError(cause error) *DomainError {
	return NewError(CodeMalformedQuiz, "Model response did not contain parseable quiz JSON", cause)
}

func NewSchemaViolationError(message string) *DomainError {
	return NewError(CodeSchemaViolation, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates per-field validation failures so the error
// middleware can render them in one 400 response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewOutOfRangeError(field string, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
}
