// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the logistics ledger. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OptimizationRecorder: accepts a route optimization into the ledger and
//     writes the new route plan back into the delivery schedule
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
