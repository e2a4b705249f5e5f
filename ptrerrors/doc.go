// Package ptrerrors provides structured error types for the ptrtools library.
//
// Import path: github.com/erraggy/ptrtools/ptrerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of pointer failures
// and implement appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [InvalidPointerError]: malformed pointer strings (bad leading character,
//     malformed index tokens where an index is required)
//   - [NotFoundError]: a mapping member is missing, or traversal reached a
//     scalar value with tokens remaining
//   - [OutOfBoundsError]: a sequence index is well formed but outside [0, length)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is(),
// plus one shared base sentinel that matches all of them:
//
//   - [ErrPointer]: matches every error in this package
//   - [ErrInvalidPointer]: matches any [InvalidPointerError]
//   - [ErrNotFound]: matches any [NotFoundError]
//   - [ErrOutOfBounds]: matches any [OutOfBoundsError]
//
// The base sentinel preserves catch-all compatibility: handlers that predate
// the narrower categories can keep matching [ErrPointer] and will continue to
// see every failure, while newer callers branch on the specific kind.
//
// # Usage Examples
//
// Check the error category with errors.Is():
//
//	value, err := pointer.Get(doc, "/spec/replicas")
//	if errors.Is(err, ptrerrors.ErrNotFound) {
//	    // The member does not exist; create it
//	}
//
// Extract error details with errors.As():
//
//	var oob *ptrerrors.OutOfBoundsError
//	if errors.As(err, &oob) {
//	    fmt.Printf("index %d outside sequence of length %d\n", oob.Index, oob.Length)
//	}
//
// Uniform handling against the base:
//
//	if errors.Is(err, ptrerrors.ErrPointer) {
//	    // Any pointer failure: invalid, not found, or out of bounds
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var oob *ptrerrors.OutOfBoundsError
//	if errors.As(err, &oob) {
//	    if errors.Is(oob.Cause, strconv.ErrRange) {
//	        // The index token overflowed the platform int
//	    }
//	}
package ptrerrors
