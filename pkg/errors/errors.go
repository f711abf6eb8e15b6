package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Backend selection errors
	ErrBackendUnknown ErrorCode = "BACKEND_UNKNOWN"
	ErrSelectorType   ErrorCode = "SELECTOR_TYPE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Theme errors
	ErrThemeParse ErrorCode = "THEME_PARSE"
)

// LiveoutError represents a structured error with code and details
type LiveoutError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LiveoutError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LiveoutError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LiveoutError) Is(target error) bool {
	var targetErr *LiveoutError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LiveoutError with the given code and message
func New(code ErrorCode, message string) *LiveoutError {
	return &LiveoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LiveoutError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LiveoutError {
	return &LiveoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LiveoutError
func Wrap(err error, code ErrorCode, message string) *LiveoutError {
	if err == nil {
		return nil
	}
	return &LiveoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LiveoutError {
	if err == nil {
		return nil
	}
	return &LiveoutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LiveoutError) WithDetail(key string, value interface{}) *LiveoutError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var liveoutErr *LiveoutError
	if errors.As(err, &liveoutErr) {
		return liveoutErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LiveoutError
func GetErrorCode(err error) ErrorCode {
	var liveoutErr *LiveoutError
	if errors.As(err, &liveoutErr) {
		return liveoutErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LiveoutError
func GetErrorDetails(err error) map[string]interface{} {
	var liveoutErr *LiveoutError
	if errors.As(err, &liveoutErr) {
		return liveoutErr.Details
	}
	return nil
}
