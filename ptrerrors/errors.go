// Package ptrerrors provides structured error types for ptrtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of pointer failures and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidPointerError: malformed pointer strings and malformed index tokens
//   - NotFoundError: missing mapping members, or traversal into a scalar
//   - OutOfBoundsError: well-formed sequence indices outside the sequence
//
// All three categories also match the shared ErrPointer sentinel, so
// catch-all handlers written against the base keep working when callers
// later switch to the narrower categories.
//
// # Usage with errors.As
//
//	value, err := ptr.Resolve(doc)
//	if err != nil {
//	    var notFound *ptrerrors.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Missing member: create it, fall back, etc.
//	    }
//	}
package ptrerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPointer matches every error produced by pointer resolution,
	// regardless of category.
	ErrPointer = errors.New("pointer error")

	// ErrInvalidPointer indicates a malformed pointer string or token.
	ErrInvalidPointer = errors.New("invalid pointer")

	// ErrNotFound indicates a member that does not exist in the document.
	ErrNotFound = errors.New("path not found")

	// ErrOutOfBounds indicates a sequence index outside the valid range.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// InvalidPointerError represents a malformed pointer.
// This includes strings missing the leading separator, and tokens that must
// be sequence indices but do not match the index syntax.
type InvalidPointerError struct {
	// Pointer is the pointer string as given by the caller
	Pointer string
	// Token is the offending token, if the failure is tied to one
	Token string
	// TokenIndex is the zero-based position of Token (-1 if not applicable)
	TokenIndex int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidPointerError) Error() string {
	msg := "invalid pointer"
	if e.Pointer != "" {
		msg += fmt.Sprintf(" %q", e.Pointer)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": token %q at position %d", e.Token, e.TokenIndex)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidPointerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrInvalidPointer and the shared ErrPointer base.
func (e *InvalidPointerError) Is(target error) bool {
	return target == ErrInvalidPointer || target == ErrPointer
}

// NotFoundError represents a pointer that addresses a member the document
// does not have: a missing mapping key, or an attempt to descend through a
// scalar value with tokens still pending.
type NotFoundError struct {
	// Pointer is the pointer string being resolved
	Pointer string
	// Token is the decoded token that failed to resolve
	Token string
	// TokenIndex is the zero-based position of Token within the pointer
	TokenIndex int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := "path not found"
	if e.Pointer != "" {
		msg += fmt.Sprintf(" %q", e.Pointer)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": member %q at position %d", e.Token, e.TokenIndex)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrNotFound and the shared ErrPointer base.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == ErrPointer
}

// OutOfBoundsError represents a sequence index that is syntactically valid
// but falls outside [0, length). Callers that treat missing mapping members
// as "create it" can still treat this as a hard failure, or use it to decide
// on append semantics.
type OutOfBoundsError struct {
	// Pointer is the pointer string being resolved
	Pointer string
	// Token is the raw index token
	Token string
	// TokenIndex is the zero-based position of Token within the pointer
	TokenIndex int
	// Index is the parsed index value (-1 when the token overflows int)
	Index int
	// Length is the length of the sequence being indexed
	Length int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *OutOfBoundsError) Error() string {
	msg := "index out of bounds"
	if e.Pointer != "" {
		msg += fmt.Sprintf(" %q", e.Pointer)
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": index %s outside [0, %d)", e.Token, e.Length)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *OutOfBoundsError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrOutOfBounds and the shared ErrPointer base.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds || target == ErrPointer
}
