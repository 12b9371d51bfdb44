package account

import (
	"context"

	"github.com/google/uuid"
)

// Storage is the persistence boundary of the signup flow.
type Storage interface {
	// CreateAccount persists a new account. Returns ErrDuplicateAccount
	// when the email or phone is already registered.
	CreateAccount(ctx context.Context, acct Account) error

	// GetAccount returns the account with the given id, or
	// ErrAccountNotFound.
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
}
