// Package errors provides structured error types for the flowscii application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the rendering pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - VALIDATION_*: Workflow document validation failures
//   - DECODE_*: Input document decoding failures
//   - LAYOUT_*: Internal layout invariant violations (bugs)
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownNode, "connection references unknown node %q", id)
//	if errors.Is(err, errors.ErrCodeUnknownNode) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecode, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Workflow validation errors. These are fatal to a render call and
	// always reported before any output is produced.
	ErrCodeDuplicateNode Code = "VALIDATION_DUPLICATE_NODE"
	ErrCodeUnknownNode   Code = "VALIDATION_UNKNOWN_NODE"
	ErrCodeMissingField  Code = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidID     Code = "VALIDATION_INVALID_ID"

	// Input document errors
	ErrCodeDecode        Code = "DECODE_ERROR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Layout invariant violations. These indicate a bug in the layering
	// engine and should never surface in correct operation.
	ErrCodeUnplacedNode Code = "LAYOUT_UNPLACED"

	// Internal errors
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

// IsValidation reports whether err carries any VALIDATION_* code.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeDuplicateNode, ErrCodeUnknownNode, ErrCodeMissingField, ErrCodeInvalidID:
		return true
	}
	return false
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
