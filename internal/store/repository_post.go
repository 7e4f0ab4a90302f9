package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/models"
)

const postsTable = "posts"

var postColumns = []string{"id", "title", "content"}

// sortColumns whitelists ORDER BY columns.
var sortColumns = map[models.SortField]string{
	models.SortByID:      "id",
	models.SortByTitle:   "title",
	models.SortByContent: "content",
}

type postRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) List(ctx context.Context, sort models.SortOptions) ([]models.Post, error) {
	query, args, err := buildListPostsQuery(r.db.builder(), sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "postRepository.List", query, args...)
}

func (r *postRepository) Search(ctx context.Context, title, content string) ([]models.Post, error) {
	query, args, err := buildSearchPostsQuery(r.db.builder(), title, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "postRepository.Search", query, args...)
}

func (r *postRepository) Create(ctx context.Context, input models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(postsTable).
		Columns("title", "content").
		Values(input.Title, input.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "postRepository.Create").Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("failed to insert post: %w", r.db.classify(err))
	}

	return input.ToPost(id), nil
}

func (r *postRepository) Update(ctx context.Context, id int64, input models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(postsTable).
		Set("title", input.Title).
		Set("content", input.Content).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.Update").Int64("id", id).Msg("failed to update post")
		return models.Post{}, fmt.Errorf("failed to update post %d: %w", id, r.db.classify(err))
	}

	if err = expectAffected(res); err != nil {
		return models.Post{}, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return input.ToPost(id), nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(postsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.Delete").Int64("id", id).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(res); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	return nil
}

func (r *postRepository) queryPosts(ctx context.Context, fn, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.Title, &p.Content); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectAffected(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func buildListPostsQuery(b sq.StatementBuilderType, sort models.SortOptions) (string, []any, error) {
	q := b.Select(postColumns...).From(postsTable)

	column, ok := sortColumns[sort.Field]
	if !ok {
		return q.OrderBy("id ASC").ToSql()
	}

	direction := "ASC"
	if sort.EffectiveDirection() == models.SortDesc {
		direction = "DESC"
	}

	orderBy := []string{column + " " + direction}
	if column != "id" {
		orderBy = append(orderBy, "id ASC")
	}

	return q.OrderBy(orderBy...).ToSql()
}

func buildSearchPostsQuery(b sq.StatementBuilderType, title, content string) (string, []any, error) {
	q := b.Select(postColumns...).From(postsTable).OrderBy("id ASC")

	if title == "" && content == "" {
		return q.ToSql()
	}

	match := sq.Or{}
	if title != "" {
		match = append(match, sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, likePattern(title)))
	}
	if content != "" {
		match = append(match, sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, likePattern(content)))
	}

	return q.Where(match).ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring pattern with LIKE wildcards
// in term escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
