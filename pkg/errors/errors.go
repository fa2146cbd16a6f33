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

	// Path resolution errors
	ErrNoHomeDirectory ErrorCode = "NO_HOME_DIRECTORY"
	ErrNoParent        ErrorCode = "NO_PARENT_FOR_RELATIVE_PATH"

	// Link errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrLinkCreate     ErrorCode = "LINK_CREATE"
	ErrCopyPartial    ErrorCode = "COPY_PARTIAL"

	// Teardown errors
	ErrTargetNotFound ErrorCode = "TARGET_NOT_FOUND"
	ErrRemove         ErrorCode = "REMOVE"

	// Hook errors
	ErrUndecodableOutput ErrorCode = "UNDECODABLE_OUTPUT"
	ErrCommandFailed     ErrorCode = "COMMAND_FAILED"
	ErrCommandNotStarted ErrorCode = "COMMAND_NOT_STARTED"

	// Configuration errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrEntryNotFound    ErrorCode = "ENTRY_NOT_FOUND"
	ErrDuplicateEntry   ErrorCode = "DUPLICATE_ENTRY"
	ErrEntryUnavailable ErrorCode = "ENTRY_UNAVAILABLE"
)

// DotctlError represents a structured error with code and details
type DotctlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotctlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotctlError) Is(target error) bool {
	var targetErr *DotctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotctlError with the given code and message
func New(code ErrorCode, message string) *DotctlError {
	return &DotctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotctlError {
	return &DotctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotctlError
func Wrap(err error, code ErrorCode, message string) *DotctlError {
	if err == nil {
		return nil
	}
	return &DotctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotctlError {
	if err == nil {
		return nil
	}
	return &DotctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotctlError) WithDetail(key string, value interface{}) *DotctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotctlError) WithDetails(details map[string]interface{}) *DotctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code.
// The outermost DotctlError in the chain decides.
func IsErrorCode(err error, code ErrorCode) bool {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any DotctlError in the chain carries code
func HasErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &DotctlError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotctlError
func GetErrorCode(err error) ErrorCode {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotctlError
func GetErrorDetails(err error) map[string]interface{} {
	var dotctlErr *DotctlError
	if errors.As(err, &dotctlErr) {
		return dotctlErr.Details
	}
	return nil
}
