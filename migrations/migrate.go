// Package migrations embeds the SQL schema of the client settings database and
// of the development API posts database, and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialects understood by [Migrate]. The values double as database/sql driver
// names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// Set names a group of migrations with its own version table.
type Set string

const (
	// SetSettings creates the client key/value settings table. The SQL is
	// portable across dialects.
	SetSettings Set = "settings"
	// SetPosts creates and seeds the posts table; the SQL is per dialect.
	SetPosts Set = "posts"
)

var ErrNilDB = errors.New("migration error: nil database")

//go:embed settings/*.sql posts/sqlite3/*.sql posts/pgx/*.sql
var embedMigrations embed.FS

// goose keeps its configuration in package globals
var gooseMu sync.Mutex

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, dialect string, set Set) error {
	if db == nil {
		return ErrNilDB
	}

	dir, err := migrationsDir(dialect, set)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("goose_" + string(set) + "_version")

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string, set Set) (string, error) {
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	switch set {
	case SetSettings:
		return string(set), nil
	case SetPosts:
		return path.Join(string(set), dialect), nil
	default:
		return "", fmt.Errorf("migration error: unknown set %q", set)
	}
}
