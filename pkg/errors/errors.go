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

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrWebRootMissing ErrorCode = "WEB_ROOT_MISSING"

	// Package errors
	ErrPackageNotFound   ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageInvalid    ErrorCode = "PACKAGE_INVALID"
	ErrPackageNotAllowed ErrorCode = "PACKAGE_NOT_ALLOWED"
	ErrNoFileMapping     ErrorCode = "NO_FILE_MAPPING"

	// File operation errors
	ErrSourceMissing  ErrorCode = "SOURCE_MISSING"
	ErrSourceIsDir    ErrorCode = "SOURCE_IS_DIR"
	ErrCopyFailed     ErrorCode = "COPY_FAILED"
	ErrSymlinkFailed  ErrorCode = "SYMLINK_FAILED"
	ErrDestinationRm  ErrorCode = "DESTINATION_REMOVE"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrShimWrite      ErrorCode = "SHIM_WRITE"
)

// ScafgoError represents a structured error with code and details
type ScafgoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScafgoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScafgoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScafgoError) Is(target error) bool {
	var targetErr *ScafgoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScafgoError with the given code and message
func New(code ErrorCode, message string) *ScafgoError {
	return &ScafgoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScafgoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScafgoError {
	return &ScafgoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScafgoError
func Wrap(err error, code ErrorCode, message string) *ScafgoError {
	if err == nil {
		return nil
	}
	return &ScafgoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScafgoError {
	if err == nil {
		return nil
	}
	return &ScafgoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScafgoError) WithDetail(key string, value interface{}) *ScafgoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scafErr *ScafgoError
	if errors.As(err, &scafErr) {
		return scafErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScafgoError
func GetErrorCode(err error) ErrorCode {
	var scafErr *ScafgoError
	if errors.As(err, &scafErr) {
		return scafErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScafgoError
func GetErrorDetails(err error) map[string]interface{} {
	var scafErr *ScafgoError
	if errors.As(err, &scafErr) {
		return scafErr.Details
	}
	return nil
}
