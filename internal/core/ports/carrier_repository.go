// Package ports defines the persistence and environment contracts of the
// logistics ledger core. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Carriers are keyed by their principal identity; there is at most one record
// per identity and records are never deleted.
type CarrierRepository interface {
	// Add persists a new carrier record. The identity must not already
	// have a record.
	Add(ctx context.Context, carrier *carrier.Carrier) error

	// Update persists changes to an existing carrier record.
	Update(ctx context.Context, carrier *carrier.Carrier) error

	// Get retrieves a carrier by its principal identity.
	// Returns an errs.ObjectNotFoundError when the identity has no record.
	Get(ctx context.Context, id kernel.Principal) (*carrier.Carrier, error)

	// Exists reports whether the identity has a carrier record.
	Exists(ctx context.Context, id kernel.Principal) (bool, error)
}
