package payment

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("booking belongs to another user")
	ErrBookingTerminal = errors.New("booking is cancelled or completed")
	ErrAlreadyPaid     = errors.New("booking is already paid")
	ErrCardInvalid     = errors.New("card details are invalid")
	ErrCardExpired     = errors.New("card is expired")
	ErrDeclined        = errors.New("payment was declined")
)
