package domain

import "errors"

var (
	// ErrDuplicateAccount is returned when registering an email that already exists.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately not distinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound = errors.New("not found")
)
