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

	// Link outcome reasons. These form the closed taxonomy reported to
	// callers of the link core; the CLI renders them, the core never does.
	ErrSourceNotFound          ErrorCode = "SOURCE_NOT_FOUND"
	ErrTargetAlreadyExists     ErrorCode = "TARGET_ALREADY_EXISTS"
	ErrUnsupportedForDirectory ErrorCode = "UNSUPPORTED_LINK_FOR_DIRECTORY"
	ErrUnsupportedForFile      ErrorCode = "UNSUPPORTED_LINK_FOR_FILE"
	ErrCrossVolume             ErrorCode = "CROSS_VOLUME_NOT_ALLOWED"
	ErrPermissionDenied        ErrorCode = "PERMISSION_DENIED"
	ErrSystemFailure           ErrorCode = "UNKNOWN_SYSTEM_FAILURE"
	ErrUnsupportedPlatform     ErrorCode = "UNSUPPORTED_PLATFORM"

	// Inspection errors
	ErrInspectFailed ErrorCode = "INSPECT_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// LinkshellError represents a structured error with code and details
type LinkshellError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkshellError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkshellError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkshellError) Is(target error) bool {
	var targetErr *LinkshellError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkshellError with the given code and message
func New(code ErrorCode, message string) *LinkshellError {
	return &LinkshellError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkshellError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkshellError {
	return &LinkshellError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkshellError
func Wrap(err error, code ErrorCode, message string) *LinkshellError {
	if err == nil {
		return nil
	}
	return &LinkshellError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkshellError {
	if err == nil {
		return nil
	}
	return &LinkshellError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkshellError) WithDetail(key string, value interface{}) *LinkshellError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lsErr *LinkshellError
	if errors.As(err, &lsErr) {
		return lsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkshellError
func GetErrorCode(err error) ErrorCode {
	var lsErr *LinkshellError
	if errors.As(err, &lsErr) {
		return lsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkshellError
func GetErrorDetails(err error) map[string]interface{} {
	var lsErr *LinkshellError
	if errors.As(err, &lsErr) {
		return lsErr.Details
	}
	return nil
}
