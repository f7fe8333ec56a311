// Package errors provides structured error types for mazegen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Mapping of maze package failures to HTTP statuses
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_MASK: Mask shapes a generator cannot work with
//   - NOT_FOUND: Missing archived mazes or cache entries
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "columns must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Classify an error from pkg/maze
//	err = errors.FromMaze(maze.Generate(g, algo, rng))
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidAlgorithm  Code = "INVALID_ALGORITHM"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidMask       Code = "INVALID_MASK"
	ErrCodeInvalidID         Code = "INVALID_ID"

	// Mask shape errors
	ErrCodeEmptyMask        Code = "EMPTY_MASK"
	ErrCodeDisconnectedMask Code = "DISCONNECTED_MASK"
	ErrCodeUnsupportedMask  Code = "UNSUPPORTED_MASK"

	// Resource errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeUnreachable Code = "UNREACHABLE"

	// Backend errors
	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

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

var mazeCodes = []struct {
	sentinel error
	code     Code
	message  string
}{
	{maze.ErrInvalidDimensions, ErrCodeInvalidDimensions, "invalid dimensions"},
	{maze.ErrMalformedMask, ErrCodeInvalidMask, "malformed mask"},
	{maze.ErrMaskMismatch, ErrCodeInvalidMask, "mask does not fit the grid"},
	{maze.ErrEmptyMask, ErrCodeEmptyMask, "mask has no present cells"},
	{maze.ErrDisconnectedMask, ErrCodeDisconnectedMask, "mask cells are not connected"},
	{maze.ErrUnsupportedMask, ErrCodeUnsupportedMask, "mask shape not supported by algorithm"},
	{maze.ErrUnknownAlgorithm, ErrCodeInvalidAlgorithm, "unknown algorithm"},
	{maze.ErrUnreachable, ErrCodeUnreachable, "cell unreachable"},
	{maze.ErrForeignCell, ErrCodeInvalidInput, "cell outside the maze"},
}

// FromMaze classifies an error returned by the maze package. Errors that are
// already *Error, and nil, are returned unchanged; unknown errors become
// INTERNAL_ERROR.
func FromMaze(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, m := range mazeCodes {
		if errors.Is(err, m.sentinel) {
			return Wrap(m.code, err, "%s", m.message)
		}
	}
	return Wrap(ErrCodeInternal, err, "unexpected error")
}

// HTTPStatus maps an error code to an HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidAlgorithm, ErrCodeInvalidFormat,
		ErrCodeInvalidDimensions, ErrCodeInvalidMask, ErrCodeInvalidID:
		return http.StatusBadRequest
	case ErrCodeEmptyMask, ErrCodeDisconnectedMask, ErrCodeUnsupportedMask, ErrCodeUnreachable:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeStorage:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
