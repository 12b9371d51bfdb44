package account

import "errors"

var (
	// ErrDuplicateAccount is returned when the email or phone is already
	// registered.
	ErrDuplicateAccount = errors.New("account with this email or phone already exists")

	// ErrAccountNotFound is returned when a lookup matches no account.
	ErrAccountNotFound = errors.New("account not found")
)
