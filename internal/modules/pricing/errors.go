package pricing

import "errors"

var (
	ErrNoAdults            = errors.New("at least one adult is required")
	ErrNegativeCount       = errors.New("passenger counts must be non-negative")
	ErrOverCapacity        = errors.New("travelers exceed package capacity")
	ErrFareClassUnknown    = errors.New("unknown fare class")
	ErrFareClassNotOffered = errors.New("fare class not offered for this package")
)
