package account

import (
	"context"
	"errors"

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

func (s *PGStorage) CreateAccount(ctx context.Context, acct Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, email, phone, state, password_hash, balance_cents)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		acct.ID, acct.Email, acct.Phone, acct.State, acct.PasswordHash, acct.BalanceCents,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return errors.Join(ErrDuplicateAccount, err)
		}
		return err
	}
	return nil
}

func (s *PGStorage) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	var acct Account
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, phone, state, password_hash, balance_cents, created_at
		 FROM accounts WHERE id = $1`,
		id,
	).Scan(&acct.ID, &acct.Email, &acct.Phone, &acct.State, &acct.PasswordHash, &acct.BalanceCents, &acct.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, errors.Join(ErrAccountNotFound, err)
		}
		return nil, err
	}
	return &acct, nil
}
