package errors

import (
	"errors"
	"fmt"
)

// Code identifies an error category with a stable string for tests.
type Code string

const (
	// ErrInvalidInput covers malformed colors, empty text, and bad geometry.
	// It fails the single request, never a whole batch.
	ErrInvalidInput Code = "INVALID_INPUT"

	// ErrMissingCapability means a required rendering backend is
	// unavailable on this platform. Fatal at first use, not retried.
	ErrMissingCapability Code = "MISSING_CAPABILITY"

	// ErrIOFailure covers failed artifact writes.
	ErrIOFailure Code = "IO_FAILURE"

	// ErrConfigParse covers unreadable batch spec or palette store files.
	ErrConfigParse Code = "CONFIG_PARSE"
)

// Error is a coded error. Unknown palette/style/template names are not
// errors anywhere in this codebase; they resolve to documented defaults.
type Error struct {
	Code    Code
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches on code so tests can use errors.Is with a bare coded error.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Wrapped: err}
}

// HasCode reports whether err or anything it wraps carries code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
