// Package errors provides structured error types shared across chartgen packages.
//
// Every failure surfaced to the user carries an ErrorCode so callers (and tests)
// can classify failures without string matching:
//
//	if errors.CodeOf(err) == errors.ErrCodeMalformedAssignment {
//	    // bad --set flag
//	}
//
// StructuredError implements Unwrap, so errors.Is and errors.As work through
// wrapped causes.
package errors
