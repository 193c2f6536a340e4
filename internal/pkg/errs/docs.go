// Package errs provides standardized error types for the delivery order
// tracking application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//
// and for workflow-specific failures:
//   - DuplicateNumberError: a delivery order number collides with an existing one
//   - ForbiddenDepartmentError: the acting department may not perform a transition
//   - AlreadyTerminalError: a transition was requested on a completed/rejected order
//   - StorageConflictError: the store rejected a conditional write (retryable by caller)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
