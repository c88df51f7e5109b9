package errs

import "errors"

// Domain-specific sentinel errors for the appointment gateway layers
var (
	// Caller input errors, detected before any DRS call
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("value out of range")

	// DRS answered but the business content is unusable
	ErrDrsRejection     = errors.New("drs rejected request")
	ErrOrderMissing     = errors.New("drs order is missing")
	ErrNoBookings       = errors.New("drs order has no bookings")
	ErrInvalidBookingID = errors.New("drs booking id is invalid")

	// The DRS call itself failed at the transport layer
	ErrDrsProtocol = errors.New("drs protocol failure")
)
