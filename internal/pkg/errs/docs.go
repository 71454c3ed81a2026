// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value violates its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For transitions rejected by the order state machine
//   - ConflictError: For concurrent-modification races detected by version checks
//   - AlreadySetError: For monotonic flags that were already set
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach keeps the engine's error taxonomy typed end to end:
// an invariant violation is never swallowed or flattened into an opaque error,
// and HTTP adapters can map categories onto status codes with errors.Is.
package errs
