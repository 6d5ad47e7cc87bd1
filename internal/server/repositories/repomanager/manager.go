// Package repomanager vends repository implementations and owns schema
// migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/microfarm/accounts/internal/dbx"
	"github.com/microfarm/accounts/internal/server/repositories/accounts"
)

// RepositoryManager binds repositories to a database handle. Taking a
// dbx.DBTX lets callers hand in either the pool or a transaction.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
