package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Hassan141998/Job-Portal/internal/database"
	"github.com/Hassan141998/Job-Portal/internal/domain/account"
)

// Expected schema:
//
//	CREATE TABLE accounts (
//	    id            UUID PRIMARY KEY,
//	    email         TEXT NOT NULL UNIQUE,
//	    name          TEXT NOT NULL DEFAULT '',
//	    password_hash TEXT NOT NULL,
//	    user_type     TEXT NOT NULL,
//	    created_at    TIMESTAMPTZ NOT NULL
//	);

// uniqueViolation is the Postgres error code raised by the accounts email
// unique constraint.
const uniqueViolation = "23505"

type AccountRepository struct {
	db database.DB
}

func NewAccountRepository(db database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, email, name, password_hash, user_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Email, a.Name, a.PasswordHash, a.UserType, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, user_type, created_at
		 FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, user_type, created_at
		 FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.UserType, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}
