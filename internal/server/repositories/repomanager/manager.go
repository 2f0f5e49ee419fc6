package repomanager

import (
	"context"
	"database/sql"

	"github.com/forgeapi/notes/internal/dbx"
	"github.com/forgeapi/notes/internal/server/repositories/notes"
	"github.com/forgeapi/notes/internal/server/repositories/users"
)

// RepositoryManager builds repositories over a plain connection or a
// transaction, and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
}
