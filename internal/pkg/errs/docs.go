// Package errs provides standardized error types for the portal client.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Validation failures in the domain model, command construction, and
// adapter responses all use these types, which keeps error handling and
// user-facing messages uniform across the module.
package errs
