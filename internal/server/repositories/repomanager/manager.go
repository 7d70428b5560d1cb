// Package repomanager wires database handles to concrete repositories and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/battleapi/internal/dbx"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/items"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/users"
)

// RepositoryManager builds repositories bound to a particular handle:
// pass the *sql.DB for standalone statements or a dbx.WithTx handle to run
// repository calls inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
}
