/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeMissingChartReference indicates no chart reference was given.
	ErrCodeMissingChartReference ErrorCode = "MISSING_CHART_REFERENCE"
	// ErrCodeUnresolvableReleaseName indicates the release name was omitted and
	// could not be derived from the chart reference.
	ErrCodeUnresolvableReleaseName ErrorCode = "UNRESOLVABLE_RELEASE_NAME"
	// ErrCodeMalformedAssignment indicates an inline value assignment that is not
	// in key=value form.
	ErrCodeMalformedAssignment ErrorCode = "MALFORMED_ASSIGNMENT"
	// ErrCodeInvalidValueSource indicates a values source that does not parse to a
	// mapping at the top level.
	ErrCodeInvalidValueSource ErrorCode = "INVALID_VALUE_SOURCE"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeIO indicates a failure reading input or writing output.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or an empty ErrorCode when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
