package optimization

import (
	"logistics/internal/pkg/errs"
)

// Efficiency rejections.
var (
	// ErrDivisionByZero is the ledger rejection for an efficiency request with
	// a zero original distance. The division is a defined failure, never
	// silently coerced to zero or infinity.
	ErrDivisionByZero = errs.NewDomainError(errs.CodeDivisionByZero, "original distance must be greater than zero")
	// ErrDistanceIsInvalid is returned when a distance argument is negative
	// or the optimized distance exceeds the original.
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distance")
)

// Efficiency computes the improvement percentage of an optimization:
//
//	(originalDistance − optimizedDistance) × 100 / originalDistance
//
// using integer arithmetic, so Efficiency(200, 150) is 25 and
// Efficiency(x, 0) is 100 for any positive x.
//
// The distances are unsigned quantities: negative arguments and an optimized
// distance greater than the original are rejected, and a zero original
// distance fails with ErrDivisionByZero.
func Efficiency(originalDistance int, optimizedDistance int) (int, error) {
	if originalDistance < 0 || optimizedDistance < 0 {
		return 0, ErrDistanceIsInvalid
	}
	if originalDistance == 0 {
		return 0, ErrDivisionByZero
	}
	if optimizedDistance > originalDistance {
		return 0, ErrDistanceIsInvalid
	}

	return (originalDistance - optimizedDistance) * 100 / originalDistance, nil
}
