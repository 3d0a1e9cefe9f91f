// Package errors provides structured error types for the rcsmt tools.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all subcommands
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure mode of template generation and bundling maps to one code:
//   - CONFIGURATION: invalid generation parameters (geometry, origin mode, shape set)
//   - DESTINATION_EXISTS: the output path is already present
//   - SOURCE_MISSING: the input folder or template file was not found
//   - MISSING_REQUIRED_ENTRY: a required artifact is absent when bundling
//   - INVALID_INPUT: malformed command-line values
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "template distance must be positive, got %g", d)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "encode %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeConfiguration covers invalid generation parameters: a
	// non-positive template distance, an unknown origin mode, or an
	// empty shape list.
	ErrCodeConfiguration Code = "CONFIGURATION"

	// ErrCodeDestinationExists is returned when an output path is
	// already present. Destinations are never overwritten.
	ErrCodeDestinationExists Code = "DESTINATION_EXISTS"

	// ErrCodeSourceMissing is returned when an input folder or template
	// file does not exist.
	ErrCodeSourceMissing Code = "SOURCE_MISSING"

	// ErrCodeMissingRequiredEntry is returned when a folder is packed
	// without one of its required artifacts.
	ErrCodeMissingRequiredEntry Code = "MISSING_REQUIRED_ENTRY"

	// ErrCodeInvalidInput covers malformed command-line values.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInternal covers unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether err has the given error code.
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
