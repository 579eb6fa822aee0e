package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrMissingCredentials = errors.New("email and password required")
	ErrUserNotFound       = errors.New("user not found")
)
