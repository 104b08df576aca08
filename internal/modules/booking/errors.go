package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrPackageNotFound   = errors.New("package not found or not bookable")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("forbidden")
	ErrBookingTerminal   = errors.New("booking is already completed or cancelled")
	ErrReturnBeforeStart = errors.New("return date must not be before departure date")
	ErrUnexpectedReturn  = errors.New("one-way bookings must not carry a return date")
)
