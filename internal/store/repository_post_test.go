package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/migrations"
	"github.com/MKhiriev/go-posts-client/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientStorageConfig(dsn string) config.ClientStorage {
	return config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "content"}).
		AddRow(1, "First post", "This is the first post.").
		AddRow(2, "Second post", "This is the second post.")
}

func Test_buildListPostsQuery(t *testing.T) {
	tests := []struct {
		name    string
		sort    models.SortOptions
		orderBy string
	}{
		{name: "no sort", sort: models.SortOptions{}, orderBy: "ORDER BY id ASC"},
		{name: "id desc", sort: models.SortOptions{Field: models.SortByID, Direction: models.SortDesc}, orderBy: "ORDER BY id DESC"},
		{name: "title default asc", sort: models.SortOptions{Field: models.SortByTitle}, orderBy: "ORDER BY title ASC, id ASC"},
		{name: "content desc", sort: models.SortOptions{Field: models.SortByContent, Direction: models.SortDesc}, orderBy: "ORDER BY content DESC, id ASC"},
		{name: "unknown field falls back to id", sort: models.SortOptions{Field: "title; DROP TABLE posts"}, orderBy: "ORDER BY id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPostsQuery(sq.StatementBuilder, tt.sort)
			require.NoError(t, err)

			assert.Empty(t, args)
			assert.True(t, strings.HasPrefix(query, "SELECT id, title, content FROM posts"), query)
			assert.True(t, strings.HasSuffix(query, tt.orderBy), query)
		})
	}
}

func Test_buildSearchPostsQuery(t *testing.T) {
	t.Run("both terms, postgres placeholders", func(t *testing.T) {
		query, args, err := buildSearchPostsQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "First", "50%_off")
		require.NoError(t, err)

		assert.Contains(t, query, "LOWER(title) LIKE $1")
		assert.Contains(t, query, "LOWER(content) LIKE $2")
		assert.Contains(t, query, " OR ")
		assert.Equal(t, []any{"%first%", `%50\%\_off%`}, args)
	})

	t.Run("title only", func(t *testing.T) {
		query, args, err := buildSearchPostsQuery(sq.StatementBuilder, "post", "")
		require.NoError(t, err)

		assert.Contains(t, query, "LOWER(title) LIKE ?")
		assert.NotContains(t, query, "content LIKE")
		assert.Equal(t, []any{"%post%"}, args)
	})

	t.Run("no terms", func(t *testing.T) {
		query, args, err := buildSearchPostsQuery(sq.StatementBuilder, "", "")
		require.NoError(t, err)

		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})
}

func TestPostRepository_List(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, title, content FROM posts ORDER BY title DESC, id ASC`).
		WillReturnRows(postRows())

	posts, err := repo.List(context.Background(), models.SortOptions{Field: models.SortByTitle, Direction: models.SortDesc})

	require.NoError(t, err)
	assert.Equal(t, SeedPosts, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, title, content FROM posts`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}))

	posts, err := repo.List(context.Background(), models.SortOptions{})

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostRepository_List_QueryError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("no such table: posts"))

	_, err := repo.List(context.Background(), models.SortOptions{})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPostRepository_List_ScanError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow("not-a-number", "t", "c"))

	_, err := repo.List(context.Background(), models.SortOptions{})

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPostRepository_Search(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, title, content FROM posts WHERE \(LOWER\(title\) LIKE \$1 ESCAPE '\\' OR LOWER\(content\) LIKE \$2 ESCAPE '\\'\)`).
		WithArgs("%first%", "%first%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).AddRow(1, "First post", "This is the first post."))

	posts, err := repo.Search(context.Background(), "First", "First")

	require.NoError(t, err)
	assert.Equal(t, SeedPosts[:1], posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO posts \(title,content\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("Hello", "World").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	post, err := repo.Create(context.Background(), models.PostInput{Title: "Hello", Content: "World"})

	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 3, Title: "Hello", Content: "World"}, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectPostgres)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO posts`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})

	_, err := repo.Create(context.Background(), models.PostInput{Title: " ", Content: "World"})

	assert.ErrorIs(t, err, ErrInvalidPost)
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE posts SET title = \?, content = \? WHERE id = \?`).
		WithArgs("New", "Body", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post, err := repo.Update(context.Background(), 2, models.PostInput{Title: "New", Content: "Body"})

	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 2, Title: "New", Content: "Body"}, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE posts`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 99, models.PostInput{Title: "a", Content: "b"})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM posts WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM posts WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete_ExecError(t *testing.T) {
	db, mock := newMockDB(t, migrations.DialectSQLite)
	repo := NewPostRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM posts`).WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrExecutingStatement)
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: ErrInvalidPost},
		{name: "not null", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: ErrInvalidPost},
		{name: "too long", err: &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException}, want: ErrInvalidPost},
		{name: "no data", err: &pgconn.PgError{Code: pgerrcode.NoData}, want: ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Classify(tt.err)
			assert.ErrorIs(t, err, tt.want)

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr), "driver error must stay reachable")
		})
	}

	t.Run("unmapped code unchanged", func(t *testing.T) {
		in := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		assert.Same(t, in, c.Classify(in))
	})

	t.Run("plain error unchanged", func(t *testing.T) {
		in := errors.New("boom")
		assert.Same(t, in, c.Classify(in))
	})
}
