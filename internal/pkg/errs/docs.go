// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Generic kinds cover validation and lookup failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//   - ObjectNotFoundError: an object cannot be found
//
// Domain kinds cover the inventory and order lifecycle rules:
//   - DuplicateSKUError: product SKU already taken
//   - InsufficientStockError: stock cannot cover a requested quantity
//   - StockUnderflowError: an adjustment would drive stock below zero
//   - InvalidStateError: operation not allowed in the current lifecycle state
//   - InvalidTransitionError: disallowed status jump
//   - ReferencedEntityError: delete blocked by a foreign reference
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInsufficientStock)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Callers classify outcomes with errors.Is against the sentinels and decide
// whether to retry or abandon; the core never retries on its own.
package errs
