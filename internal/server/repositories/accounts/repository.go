// Package accounts provides storage for account records.
package accounts

import (
	"context"

	"github.com/microfarm/accounts/internal/server/models"
)

// Repository is the storage contract for account records.
//
// Lookups scoped by status return common.ErrorNotFound for both "no such
// email" and "wrong status"; the distinction is deliberately not observable.
type Repository interface {
	// Create inserts a new record. A duplicate email yields a
	// *common.AlreadyExistsError carrying the constraint message.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByEmail returns the record for email regardless of status.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByEmailAndStatus returns the record only if it has the given status.
	GetByEmailAndStatus(ctx context.Context, email string, status models.AccountStatus) (*models.Account, error)

	// Activate flips a pending record to active in a single conditional
	// write and reports whether a row actually changed. A record that is no
	// longer pending is left untouched and reported as false.
	Activate(ctx context.Context, id string) (bool, error)
}
