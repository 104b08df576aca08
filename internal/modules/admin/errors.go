package admin

import "errors"

var (
	ErrVendorNotFound  = errors.New("vendor profile not found")
	ErrAlreadyReviewed = errors.New("vendor application already reviewed")
	ErrNotesRequired   = errors.New("rejection requires admin notes")
	ErrUserNotFound    = errors.New("user not found")
)
