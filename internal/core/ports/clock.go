package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Clock is the logical timestamp source supplied by the execution
// environment. Heights are monotonically non-decreasing across calls; the
// core stamps them onto created records and never generates its own.
//
// The clock may advance on rejected operations — only the per-kind ID
// counters are required to stay gapless.
type Clock interface {
	// Now returns the current ledger height.
	Now(ctx context.Context) (kernel.Height, error)
}
