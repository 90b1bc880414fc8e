package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the pipeline.
type ErrorCode string

// Decoder error codes
const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrDecodeFailed      ErrorCode = "DECODE_FAILED"
	ErrEmptyContent      ErrorCode = "EMPTY_CONTENT"
)

// Persistence error codes
const (
	ErrSerialization ErrorCode = "SERIALIZATION"
	ErrWriteFailed   ErrorCode = "WRITE_FAILED"
)

// Error represents a structured error with code, message, and the path it
// relates to. Decoder and store failures are always reported as *Error so
// callers can branch on the code instead of matching message text.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Path    string    `json:"path,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithPath attaches the offending filesystem path.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// GetErrorCode extracts the error code from an error, unwrapping as needed.
// Returns "" if the error is not a *Error.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
