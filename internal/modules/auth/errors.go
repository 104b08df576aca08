package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)
