// Package error defines domain-specific errors for the Xpress Ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the registry.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category name (case-insensitive) is already taken.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameEmpty is returned when a category name is empty or whitespace.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryReserved is returned when mutating the reserved default category.
	ErrCategoryReserved = errors.New("the default category cannot be modified")

	// ErrSameCategory is returned when merging a category into itself.
	ErrSameCategory = errors.New("source and target category are the same")

	// ErrRulePatternEmpty is returned when a rule pattern is empty or whitespace.
	ErrRulePatternEmpty = errors.New("rule pattern cannot be empty")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameEmpty  CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryReserved   CategoryErrorCode = "CAT-010004"
	ErrCodeSameCategory       CategoryErrorCode = "CAT-010005"
	ErrCodeRulePatternEmpty   CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
