package funding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/fundkit/pkg/pg"
)

// PGStorage is the PostgreSQL implementation of Storage.
type PGStorage struct {
	pool *pgxpool.Pool
}

func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

// ApplyDeposit runs the balance update and the transaction insert in one
// database transaction. The returned balance comes from the UPDATE's
// RETURNING clause, so it reflects exactly the state this deposit
// produced. If any step fails the whole call fails and nothing is
// committed.
func (s *PGStorage) ApplyDeposit(ctx context.Context, accountID uuid.UUID, amountCents int64, description string) (*Receipt, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin deposit tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	receipt := Receipt{
		TransactionID: uuid.New(),
		AccountID:     accountID,
		AmountCents:   amountCents,
		Description:   description,
	}

	err = tx.QueryRow(ctx,
		`UPDATE accounts SET balance_cents = balance_cents + $2
		 WHERE id = $1
		 RETURNING balance_cents, email`,
		accountID, amountCents,
	).Scan(&receipt.BalanceCents, &receipt.Email)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, errors.Join(ErrAccountNotFound, err)
		}
		return nil, fmt.Errorf("credit balance: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (id, account_id, amount_cents, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		receipt.TransactionID, accountID, amountCents, description,
	).Scan(&receipt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit deposit tx: %w", err)
	}
	return &receipt, nil
}
