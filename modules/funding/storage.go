package funding

import (
	"context"

	"github.com/google/uuid"
)

// Storage is the persistence boundary of the funding flow.
type Storage interface {
	// ApplyDeposit records the transaction and credits the balance
	// atomically, returning a receipt with the confirmed new balance.
	// Returns ErrAccountNotFound when the account does not exist. Any
	// error means nothing was applied and no receipt exists.
	ApplyDeposit(ctx context.Context, accountID uuid.UUID, amountCents int64, description string) (*Receipt, error)
}
