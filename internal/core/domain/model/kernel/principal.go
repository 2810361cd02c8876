package kernel

import (
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when validating a zero-value Principal.
// Principals must be created via the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"principal must be created via NewPrincipal constructor")

// Principal is the opaque identity of a caller, as resolved by the external
// dispatch layer. The ledger never interprets its internal structure: the only
// operations the core performs on a principal are equality comparison (for
// ownership and coordinator checks) and use as a registry key.
//
// Principal is an immutable value object. Two principals are the same caller
// exactly when IsEqual reports true.
//
// Example usage:
//
//	coordinator, err := kernel.NewPrincipal("ST1SJ3DTE5DN7X54YDH5D64R3BCB6A2AG2ZQ8YPD5")
//	if err != nil {
//	    // handle error
//	}
//	if !schedule.Coordinator().IsEqual(coordinator) {
//	    // reject as unauthorized
//	}
type Principal struct {
	value string
	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal from its external string form.
// The value is opaque to the ledger; the only requirement is that it is
// non-empty, since an empty identity can never own anything.
func NewPrincipal(value string) (Principal, error) {
	if value == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal")
	}

	return Principal{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the external string form of the principal.
func (p Principal) String() string {
	return p.value
}

// IsEqual reports whether two principals identify the same caller.
func (p Principal) IsEqual(other Principal) bool {
	return p.value == other.value
}

// Validate checks that the principal was built via NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}
