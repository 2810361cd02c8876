// Package kernel contains the shared value objects of the logistics ledger.
//
// The kernel is deliberately small: it holds only the primitives every
// component agrees on — caller identities (Principal), shipment identifiers
// (UUID), and the logical clock (Height). Component-specific values such as
// schedule priorities live next to their aggregates instead.
//
// All kernel value objects are immutable and validated at construction.
// The zero value of a guarded type is invalid and fails Validate; use the
// constructor functions to obtain instances.
package kernel
