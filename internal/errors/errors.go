// Package errors provides structured error values with stable codes for the
// cleaning pipeline and its collaborators. Per-cell data anomalies are never
// errors; only structural and contract violations surface here.
package errors

import (
	"errors"
	"fmt"
)

// Error is a structured error carrying a stable machine-readable code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on the stable code so sentinels survive wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates a structured error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a cause to a structured error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithDetails returns a copy of the error carrying extra details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: details, cause: e.cause}
}

// Predefined errors for common failure classes.
var (
	// ErrInvalidInput indicates the input is not a recognized table structure.
	ErrInvalidInput = New("INVALID_INPUT", "input is not a valid table")
	// ErrUnsupportedFormat indicates an input file extension the readers do not handle.
	ErrUnsupportedFormat = New("UNSUPPORTED_FORMAT", "unsupported input file format")
	// ErrFileNotFound indicates a missing input file.
	ErrFileNotFound = New("FILE_NOT_FOUND", "input file not found")
	// ErrEmptyHeader indicates a CSV without the required header row.
	ErrEmptyHeader = New("EMPTY_HEADER", "input file has no header row")
	// ErrStoreUnavailable indicates the run-history store could not be opened.
	ErrStoreUnavailable = New("STORE_UNAVAILABLE", "run-history store unavailable")
)

// InvalidInput wraps a structural validation failure.
func InvalidInput(err error) *Error {
	return Wrap(err, ErrInvalidInput.Code, ErrInvalidInput.Message)
}

// FileNotFound wraps a missing-file failure with the offending path.
func FileNotFound(path string, err error) *Error {
	return Wrap(err, ErrFileNotFound.Code, fmt.Sprintf("input file not found: %s", path))
}
