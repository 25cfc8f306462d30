// Package error defines domain-specific errors for the budget manager.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is not a calendar date.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNegativeAmount is returned when a transaction amount is negative.
	// Direction is carried by the transaction type, never by the sign.
	ErrNegativeAmount = errors.New("transaction amount must not be negative")

	// ErrUnknownCategory is returned when the category is not in the registry.
	ErrUnknownCategory = errors.New("unknown category")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate TransactionErrorCode = "TXN-010002"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010003"
	ErrCodeUnknownCategory        TransactionErrorCode = "TXN-010004"
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
