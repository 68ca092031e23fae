// Package repomanager wires the server's repositories to a concrete
// database handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrashin/tokengate/internal/dbx"
	"github.com/mpetrashin/tokengate/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a handle that may be
// either the root *sql.DB or an open transaction.
type RepositoryManager interface {
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
