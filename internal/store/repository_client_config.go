package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/models"
)

const settingsTable = "settings"

type clientConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientConfigRepository(db *DB, logger *logger.Logger) ClientConfigRepository {
	return &clientConfigRepository{
		db:     db,
		logger: logger,
	}
}

func (r *clientConfigRepository) Load(ctx context.Context) (models.ClientConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSettingQuery(r.db.builder(), models.ClientConfigKey)
	if err != nil {
		return models.ClientConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientConfig{}, ErrClientConfigNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "clientConfigRepository.Load").
			Str("key", models.ClientConfigKey).
			Msg("failed to read setting")
		return models.ClientConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.ClientConfig{APIBaseURL: value}, nil
}

func (r *clientConfigRepository) Save(ctx context.Context, cfg models.ClientConfig) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(r.db.builder(), models.ClientConfigKey, cfg.APIBaseURL, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "clientConfigRepository.Save").
			Str("key", models.ClientConfigKey).
			Msg("failed to save setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func buildSelectSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(b sq.StatementBuilderType, key, value string, updatedAt time.Time) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
