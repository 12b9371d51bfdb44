package funding

import "errors"

var (
	// ErrAccountNotFound is returned when the deposit targets an account
	// that does not exist.
	ErrAccountNotFound = errors.New("account not found")
)
