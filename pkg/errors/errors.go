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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Pack errors
	ErrEmptyIconSet ErrorCode = "EMPTY_ICON_SET"
	ErrInvalidColor ErrorCode = "INVALID_COLOR"

	// Project descriptor errors
	ErrDescriptorLoad ErrorCode = "DESCRIPTOR_LOAD"
	ErrDescriptorSave ErrorCode = "DESCRIPTOR_SAVE"

	// Theme discovery errors
	ErrThemeNotFound ErrorCode = "THEME_NOT_FOUND"

	// Install errors
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// StromError represents a structured error with code and details
type StromError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StromError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StromError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StromError) Is(target error) bool {
	var targetErr *StromError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StromError with the given code and message
func New(code ErrorCode, message string) *StromError {
	return &StromError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StromError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StromError {
	return &StromError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StromError
func Wrap(err error, code ErrorCode, message string) *StromError {
	if err == nil {
		return nil
	}
	return &StromError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StromError {
	if err == nil {
		return nil
	}
	return &StromError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StromError) WithDetail(key string, value interface{}) *StromError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *StromError) WithDetails(details map[string]interface{}) *StromError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stromErr *StromError
	if errors.As(err, &stromErr) {
		return stromErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StromError
func GetErrorCode(err error) ErrorCode {
	var stromErr *StromError
	if errors.As(err, &stromErr) {
		return stromErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StromError
func GetErrorDetails(err error) map[string]interface{} {
	var stromErr *StromError
	if errors.As(err, &stromErr) {
		return stromErr.Details
	}
	return nil
}
