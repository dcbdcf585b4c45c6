package errs

import (
	"errors"
)

var (
	// ErrNotFound - referenced car, booking or recipient is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInterval - malformed or zero/negative-length range.
	ErrInvalidInterval = errors.New("start date must be before end date")
	// ErrConflict - the interval overlaps an active booking on the car
	// or customer axis.
	ErrConflict = errors.New("interval overlaps an active booking")
	// ErrIllegalTransition - a state-machine precondition is not met.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrForbidden - the actor is not a party to the booking.
	ErrForbidden = errors.New("actor is not allowed to perform this action")
)
