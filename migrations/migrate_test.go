// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the db itself, every call fails

	err = Migrate(db, DialectPostgres, SetSettings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, Migrate(db, DialectSQLite, SetSettings), ErrNilDB)
}

func TestMigrationsDir(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		set     Set
		want    string
		wantErr bool
	}{
		{name: "settings sqlite", dialect: DialectSQLite, set: SetSettings, want: "settings"},
		{name: "settings pgx", dialect: DialectPostgres, set: SetSettings, want: "settings"},
		{name: "posts sqlite", dialect: DialectSQLite, set: SetPosts, want: "posts/sqlite3"},
		{name: "posts pgx", dialect: DialectPostgres, set: SetPosts, want: "posts/pgx"},
		{name: "unknown dialect", dialect: "mysql", set: SetPosts, wantErr: true},
		{name: "unknown set", dialect: DialectSQLite, set: "users", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := migrationsDir(tt.dialect, tt.set)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite, SetSettings))
	require.NoError(t, Migrate(db, DialectSQLite, SetPosts))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite, SetPosts))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count))
	assert.Equal(t, 2, count)

	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES ('apiBaseUrl', 'http://localhost:5002/api')`)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO posts (title, content) VALUES ('  ', 'body')`)
	assert.Error(t, err, "blank title must violate the check constraint")
}
