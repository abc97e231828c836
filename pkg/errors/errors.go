// Package errors provides structured error types for dotgrid.
//
// Error codes are machine readable and let the CLI distinguish
// validation failures from processing failures when picking an exit
// status and message.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "spacing must be positive, got %g", spacing)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeProcessing, origErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories dotgrid can hit.
const (
	// ErrCodeInvalidParameter marks impossible geometry or rendering
	// input: non-positive dimensions or spacing, out-of-range opacity,
	// malformed colors passed directly to the core.
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"

	// ErrCodeInvalidConfig marks an unusable configuration file.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeFileNotFound marks a missing input file.
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeProcessing marks an unreadable or unmergeable document.
	// Processing errors are fatal; no partial output is written.
	ErrCodeProcessing Code = "PROCESSING_ERROR"

	// ErrCodeWriteFailed marks a failure serializing the output file.
	ErrCodeWriteFailed Code = "WRITE_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
