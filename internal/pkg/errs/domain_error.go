package errs

import (
	"errors"
	"fmt"
)

// Code is the stable numeric identifier of a ledger rejection.
// The values are serialization constants shared with external callers and
// must never be renumbered.
type Code int

const (
	// CodeCarrierNotFound: the referenced carrier identity has no record.
	CodeCarrierNotFound Code = 301
	// CodeAlreadyRegistered: registration attempted for an identity that already has a record.
	CodeAlreadyRegistered Code = 302
	// CodeInvalidCapacity: declared maximum capacity is not a positive value.
	CodeInvalidCapacity Code = 303
	// CodeUnauthorized: caller identity does not match the required owner or coordinator.
	CodeUnauthorized Code = 400
	// CodeScheduleNotFound: the referenced schedule ID has no record.
	CodeScheduleNotFound Code = 401
	// CodeInvalidPriority: priority value outside the defined set.
	CodeInvalidPriority Code = 402
	// CodeDivisionByZero: efficiency requested for a zero original distance.
	CodeDivisionByZero Code = 500
)

// getCodeStrings returns a map of Code values to their stable string labels.
func getCodeStrings() map[Code]string {
	return map[Code]string{
		CodeCarrierNotFound:   "CARRIER_NOT_FOUND",
		CodeAlreadyRegistered: "ALREADY_REGISTERED",
		CodeInvalidCapacity:   "INVALID_CAPACITY",
		CodeUnauthorized:      "UNAUTHORIZED",
		CodeScheduleNotFound:  "SCHEDULE_NOT_FOUND",
		CodeInvalidPriority:   "INVALID_PRIORITY",
		CodeDivisionByZero:    "DIVISION_BY_ZERO",
	}
}

// String returns the stable label of the code, or "UNKNOWN" for values
// outside the taxonomy.
func (c Code) String() string {
	if s, ok := getCodeStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the code belongs to the closed taxonomy.
func (c Code) Validate() error {
	if _, ok := getCodeStrings()[c]; !ok {
		return NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%d is not a known rejection code", int(c)))
	}
	return nil
}

// DomainError is a ledger rejection: a well-typed, recoverable refusal of one
// state transition. Every rejection carries exactly one Code from the closed
// taxonomy, no partial state change accompanies it, and it is always reported
// synchronously to the caller.
//
// Domain packages declare their rejections as package-level sentinels, e.g.
//
//	var ErrAlreadyRegistered = errs.NewDomainError(errs.CodeAlreadyRegistered, "carrier already registered")
//
// so callers can use errors.Is(err, carrier.ErrAlreadyRegistered) and the
// transport layer can serialize the numeric code via errs.CodeOf.
type DomainError struct {
	code    Code
	message string
}

// NewDomainError creates a rejection with the given code and message.
func NewDomainError(code Code, message string) *DomainError {
	return &DomainError{code: code, message: message}
}

// Code returns the stable numeric rejection code.
func (e *DomainError) Code() Code {
	return e.code
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.message, int(e.code))
}

// Is matches another DomainError with the same code, so wrapped copies of a
// sentinel still compare equal under errors.Is.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return e.code == other.code
}

// CodeOf extracts the rejection code from err, unwrapping as needed.
// The second return value reports whether err carries a DomainError.
func CodeOf(err error) (Code, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code(), true
	}
	return 0, false
}
