package funding

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies the payment instrument used to fund an account.
type Source string

const (
	SourceCard Source = "card"
	SourceBank Source = "bank"
)

// FundParams is the raw, untrusted input of the funding flow. Amount,
// card and routing numbers are strings exactly as the caller sent them.
type FundParams struct {
	AccountID     uuid.UUID `json:"account_id"`
	Source        Source    `json:"source"`
	CardNumber    string    `json:"card_number,omitempty"`
	RoutingNumber string    `json:"routing_number,omitempty"`
	Amount        string    `json:"amount"`
}

// Receipt is the confirmed outcome of a deposit. BalanceCents is the
// balance read back from the same transaction that applied the deposit,
// never computed client-side.
type Receipt struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Email         string
	AmountCents   int64
	Description   string
	BalanceCents  int64
	CreatedAt     time.Time
}
