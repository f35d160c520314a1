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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Prompt errors
	ErrPrompt    ErrorCode = "PROMPT"
	ErrCancelled ErrorCode = "CANCELLED"

	// Template errors
	ErrTemplate ErrorCode = "TEMPLATE"

	// Action errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"

	// Installer errors
	ErrInstall ErrorCode = "INSTALL"
)

// GulpsError represents a structured error with code and details
type GulpsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GulpsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GulpsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GulpsError) Is(target error) bool {
	var targetErr *GulpsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GulpsError with the given code and message
func New(code ErrorCode, message string) *GulpsError {
	return &GulpsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GulpsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GulpsError {
	return &GulpsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GulpsError
func Wrap(err error, code ErrorCode, message string) *GulpsError {
	if err == nil {
		return nil
	}
	return &GulpsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GulpsError {
	if err == nil {
		return nil
	}
	return &GulpsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GulpsError) WithDetail(key string, value interface{}) *GulpsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gulpsErr *GulpsError
	if errors.As(err, &gulpsErr) {
		return gulpsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GulpsError
func GetErrorCode(err error) ErrorCode {
	var gulpsErr *GulpsError
	if errors.As(err, &gulpsErr) {
		return gulpsErr.Code
	}
	return ErrUnknown
}
