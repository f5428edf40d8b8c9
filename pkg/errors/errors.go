// Package errors provides structured error types for the floornav tools.
//
// Error codes are machine-readable and follow a hierarchical naming
// convention:
//   - INVALID_*: input validation failures (bad config, bad file format)
//   - INSUFFICIENT_EXTENT / DEGENERATE_COUNT: layout generation failures
//   - NOT_FOUND_*: resource not found
//   - INTERNAL_*: unexpected internal errors
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInsufficientExtent, "checkout area %.1f too narrow", w)
//	if errors.Is(err, errors.ErrCodeInsufficientExtent) {
//	    // handle configuration error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: the layout config is malformed or inconsistent.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeInsufficientExtent marks a region whose configured extent cannot
	// host its minimum required content (edge buffers plus one item).
	ErrCodeInsufficientExtent Code = "INSUFFICIENT_EXTENT"

	// ErrCodeDegenerateCount marks a resolved lane/row/column count of zero,
	// typically from a zero configured maximum.
	ErrCodeDegenerateCount Code = "DEGENERATE_COUNT"

	// File and format errors.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Resource errors.
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors.
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

// IsConfig reports whether err is any of the fatal layout configuration
// errors (invalid config, insufficient extent, degenerate count).
func IsConfig(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInsufficientExtent, ErrCodeDegenerateCount:
		return true
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
