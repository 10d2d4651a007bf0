package contract

import "errors"

var (
	// ErrContractViolation is matched by every *Violation via errors.Is.
	ErrContractViolation = errors.New("contract violation")

	// ErrEmptyMembership is returned when a membership contract is defined without legal values.
	ErrEmptyMembership = errors.New("membership contract requires at least one legal value")

	// ErrInvalidRange is returned when range bounds are reversed or not comparable.
	ErrInvalidRange = errors.New("invalid range bounds")
)
