// Package errors defines the error taxonomy shared by the attendance
// pipeline. Every failure surfaced to the user is an AppError carrying a
// kind and a human-readable message; kinds classify the failure for
// callers and tests without leaking structured codes into the message.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// KindConfig covers invalid configuration input. Raised before any
	// file I/O happens.
	KindConfig Kind = "config"
	// KindSource covers input path problems: not a file or directory,
	// unsupported extension, or no matching files.
	KindSource Kind = "source"
	// KindDecode covers undecodable file bytes and unopenable workbooks.
	KindDecode Kind = "decode"
	// KindRowFormat covers join-time cells that match none of the
	// accepted timestamp patterns.
	KindRowFormat Kind = "row-format"
	// KindWrite covers report export failures.
	KindWrite Kind = "write"
)

// AppError is the application error type. All pipeline errors are
// terminal for the current run.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError of the given kind.
func New(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

// Newf creates an AppError with a formatted message and no cause.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return New(KindConfig, message, cause)
}

// NewSourceError creates a source-selection error.
func NewSourceError(message string, cause error) *AppError {
	return New(KindSource, message, cause)
}

// NewDecodeError creates a decode error.
func NewDecodeError(message string, cause error) *AppError {
	return New(KindDecode, message, cause)
}

// NewRowFormatError creates a row-format error.
func NewRowFormatError(message string, cause error) *AppError {
	return New(KindRowFormat, message, cause)
}

// NewWriteError creates a report-export error.
func NewWriteError(message string, cause error) *AppError {
	return New(KindWrite, message, cause)
}
