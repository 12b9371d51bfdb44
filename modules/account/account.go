package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted account record. Phone and State hold the
// canonical forms produced by the validation core; PasswordHash is a
// bcrypt hash and the raw password is never stored.
type Account struct {
	ID           uuid.UUID
	Email        string
	Phone        string
	State        string
	PasswordHash string
	BalanceCents int64
	CreatedAt    time.Time
}

// SignupParams carries the raw, unvalidated signup fields.
type SignupParams struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	State    string `json:"state"`
	Password string `json:"password"`
}
