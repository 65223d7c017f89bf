package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the different kinds of failures the checkpoint store reports
type ErrorType string

const (
	ErrorTypeInvalidInput    ErrorType = "invalid_input"
	ErrorTypeMalformedRecord ErrorType = "malformed_record"
	ErrorTypeMissingWorld    ErrorType = "missing_world"
	ErrorTypeMissingFile     ErrorType = "missing_file"
	ErrorTypeEmptyFile       ErrorType = "empty_file"
	ErrorTypeIO              ErrorType = "io"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// Sentinels for errors.Is. Only the Type is compared.
var (
	ErrInvalidInput    = &Error{Type: ErrorTypeInvalidInput}
	ErrMalformedRecord = &Error{Type: ErrorTypeMalformedRecord}
	ErrMissingWorld    = &Error{Type: ErrorTypeMissingWorld}
	ErrMissingFile     = &Error{Type: ErrorTypeMissingFile}
	ErrEmptyFile       = &Error{Type: ErrorTypeEmptyFile}
	ErrIO              = &Error{Type: ErrorTypeIO}
)

// Error is a checkpoint error with type information
type Error struct {
	Type    ErrorType
	Op      string
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Type) + " error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// New creates a typed error without a cause
func New(errorType ErrorType, op, message string) *Error {
	return &Error{Type: errorType, Op: op, Message: message}
}

// Wrap creates a typed error around a cause
func Wrap(errorType ErrorType, op, path string, err error) *Error {
	return &Error{Type: errorType, Op: op, Path: path, Err: err}
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsWarning checks if an error type leaves the store in a usable state and only
// needs to be reported to the user
func IsWarning(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeEmptyFile, ErrorTypeMalformedRecord, ErrorTypeMissingFile:
		return true
	case ErrorTypeIO, ErrorTypeInvalidInput, ErrorTypeMissingWorld:
		return false
	default:
		return false
	}
}
