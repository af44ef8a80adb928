// Package error defines domain-specific errors for the Xpress Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction id is unknown to the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRow is returned when an ingestion row is missing a required
	// field or carries an unparseable amount or date.
	ErrInvalidRow = errors.New("invalid transaction row")

	// ErrUnknownCategory is returned when assigning a transaction to a
	// category that is not registered.
	ErrUnknownCategory = errors.New("unknown category")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidRow          TransactionErrorCode = "TXN-010002"
	ErrCodeUnknownCategory     TransactionErrorCode = "TXN-010003"
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
