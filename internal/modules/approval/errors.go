package approval

import "errors"

var (
	ErrNotFound       = errors.New("submission not found")
	ErrAlreadyDecided = errors.New("submission already decided")
	ErrNotesRequired  = errors.New("rejection requires admin notes")
)
