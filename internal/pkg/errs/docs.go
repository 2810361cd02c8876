// Package errs provides standardized error types for the logistics ledger.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - DomainError: For ledger rejections that carry a stable numeric code
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// DomainError is the ledger's closed rejection taxonomy: every validation or
// authorization failure a caller can trigger maps to exactly one Code whose
// numeric value is a stable serialization constant. Callers match rejections
// either with errors.Is against the package-level sentinel instances declared
// by the domain packages, or by extracting the code with CodeOf.
package errs
