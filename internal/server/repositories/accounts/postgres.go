package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/microfarm/accounts/internal/common"
	"github.com/microfarm/accounts/internal/dbx"
	"github.com/microfarm/accounts/internal/server/models"
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, name, secret, password_hash, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.Name, account.Secret,
		account.PasswordHash, account.Status.String(), account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &common.AlreadyExistsError{Message: pgErr.Message}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, name, secret, password_hash, status, created_at FROM accounts
		 WHERE email = $1
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByEmailAndStatus(ctx context.Context, email string, status models.AccountStatus) (*models.Account, error) {
	query :=
		`SELECT id, email, name, secret, password_hash, status, created_at FROM accounts
		 WHERE email = $1 AND status = $2
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email, status.String()))
}

func (r *PostgresRepository) Activate(ctx context.Context, id string) (bool, error) {
	query :=
		`UPDATE accounts SET status = $2
		 WHERE id = $1 AND status = $3
		 `

	res, err := r.db.ExecContext(ctx, query, id, models.StatusActive.String(), models.StatusPending.String())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return affected == 1, nil
}

func (r *PostgresRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var status string

	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.Secret,
		&account.PasswordHash, &status, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Status, err = models.ParseAccountStatus(status)
	if err != nil {
		return nil, fmt.Errorf("corrupt account record %s: %w", account.ID, err)
	}

	return account, nil
}
