// Package errors provides structured error types for bpmngraph.
//
// Every failure that aborts a conversion carries a machine-readable [Code]
// so that the CLI (and library callers) can tell a malformed document apart
// from a structurally invalid diagram or a bad configuration file.
//
// # Error Codes
//
//   - DOCUMENT_PARSE: the input document is not well-formed XML
//   - STRUCTURAL: an element violates the expected diagram structure
//   - UNRESOLVED_REFERENCE: an incoming/outgoing reference names an unknown id
//   - INVALID_CONFIG: the configuration file is unreadable or inconsistent
//   - INVALID_FORMAT: the requested output format is not supported
//   - IO: reading the input or writing the output failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeStructural, "element %s: unexpected child %s", id, tag)
//	if errors.Is(err, errors.ErrCodeStructural) {
//	    // Handle structural error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDocumentParse, xmlErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeDocumentParse       Code = "DOCUMENT_PARSE"
	ErrCodeStructural          Code = "STRUCTURAL"
	ErrCodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Environment errors
	ErrCodeIO       Code = "IO"
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

// ReferenceError describes an incoming or outgoing reference that points
// to an id with no corresponding node.
type ReferenceError struct {
	ElementID string // Element declaring the reference
	RefID     string // Referenced id that could not be resolved
	Direction string // "incoming" or "outgoing"
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s reference %q of element %q does not resolve", e.Direction, e.RefID, e.ElementID)
}

// Code returns the error code for this error type.
func (e *ReferenceError) Code() Code {
	return ErrCodeUnresolvedReference
}
