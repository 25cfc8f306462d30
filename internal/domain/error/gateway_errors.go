// Package error defines domain-specific errors for the budget manager.
package error

import "errors"

// Gateway domain errors.
var (
	// ErrGatewayUnavailable is returned when the AI provider is not configured or unreachable.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrEmptyGatewayResponse is returned when the provider returns no usable content.
	ErrEmptyGatewayResponse = errors.New("empty response from gateway")

	// ErrMalformedGatewayResponse is returned when the provider response cannot be parsed.
	ErrMalformedGatewayResponse = errors.New("malformed gateway response")

	// ErrIncompleteReceiptDraft is returned when an extraction response is
	// missing a required field. Partial drafts are never returned.
	ErrIncompleteReceiptDraft = errors.New("incomplete receipt draft")

	// ErrDraftCategoryNotInVocabulary is returned when the extracted category
	// is not one of the supplied valid category names.
	ErrDraftCategoryNotInVocabulary = errors.New("extracted category not in vocabulary")
)

// GatewayErrorCode defines error codes for gateway errors.
// Format: GTW-XXYYYY where XX is category and YYYY is specific error.
type GatewayErrorCode string

const (
	// Provider errors (02XXXX)
	ErrCodeGatewayUnavailable      GatewayErrorCode = "GTW-020001"
	ErrCodeEmptyGatewayResponse    GatewayErrorCode = "GTW-020002"
	ErrCodeMalformedResponse       GatewayErrorCode = "GTW-020003"
	ErrCodeIncompleteReceiptDraft  GatewayErrorCode = "GTW-020004"
	ErrCodeDraftCategoryNotInVocab GatewayErrorCode = "GTW-020005"
)

// GatewayError represents a gateway error with code and message.
type GatewayError struct {
	Code    GatewayErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError creates a new GatewayError with the given code and message.
func NewGatewayError(code GatewayErrorCode, message string, err error) *GatewayError {
	return &GatewayError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
