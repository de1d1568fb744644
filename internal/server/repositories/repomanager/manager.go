// Package repomanager bundles repository constructors behind one interface
// so services can run any repository against either *sql.DB or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mbalakin/seizurelog/internal/dbx"
	"github.com/mbalakin/seizurelog/internal/server/repositories/profiles"
	"github.com/mbalakin/seizurelog/internal/server/repositories/seizures"
	"github.com/mbalakin/seizurelog/internal/server/repositories/sessions"
	"github.com/mbalakin/seizurelog/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Seizures(db dbx.DBTX) seizures.Repository
}
