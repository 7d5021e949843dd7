// Package errors provides structured error types for placeview.
//
// Every failure placeview can report maps to one [Code]. None of them are
// retried: the CLI prints the message and exits before anything is drawn.
//
// # Error Codes
//
//   - USAGE: wrong number of command-line arguments
//   - CONFIG_MISSING: the plot script could not be found
//   - INPUT_FILE_MISSING: the node or placement file could not be found
//   - MALFORMED_RECORD: a record line had an unparseable numeric field
//   - EMPTY_SCENE: no terminals, so no bounds can be derived
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfigMissing, "%s script missing", path)
//	if errors.Is(err, errors.ErrCodeConfigMissing) {
//	    // Handle missing script
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedRecord, origErr, "%s:%d", file, line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Invocation and configuration errors
	ErrCodeUsage         Code = "USAGE"
	ErrCodeConfigMissing Code = "CONFIG_MISSING"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Input errors
	ErrCodeInputFileMissing Code = "INPUT_FILE_MISSING"
	ErrCodeMalformedRecord  Code = "MALFORMED_RECORD"

	// Scene errors
	ErrCodeEmptyScene Code = "EMPTY_SCENE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// UserMessage returns the operator-facing message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause when there is one. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// RecordError locates a malformed record in its source file.
type RecordError struct {
	File  string // Path of the file being parsed
	Line  int    // 1-based line number
	Field string // Offending field text
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: incomplete record", e.File, e.Line)
	}
	return fmt.Sprintf("%s:%d: invalid number %q", e.File, e.Line, e.Field)
}

// Code returns the error code for this error type.
func (e *RecordError) Code() Code {
	return ErrCodeMalformedRecord
}
