package review

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
