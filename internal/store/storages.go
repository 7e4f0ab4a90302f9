package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/migrations"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// ClientConfigRepository persists the API base URL in SQLite.
	ClientConfigRepository ClientConfigRepository

	db *DB
}

// NewClientStorages opens the SQLite settings database at cfg.DB.DSN
// (creating the file if needed), applies the settings migrations and wires
// the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(migrations.SetSettings); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ClientConfigRepository: NewClientConfigRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the settings database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PostStorage is the posts repository of the development API together with
// the handle that must be closed on shutdown (nil for memory).
type PostStorage struct {
	PostRepository PostRepository

	db *DB
}

// NewPostStorage builds the posts repository selected by cfg.Driver. The
// memory driver is seeded with [SeedPosts]; SQL drivers are migrated first.
func NewPostStorage(ctx context.Context, cfg config.PostsDB, logger *logger.Logger) (*PostStorage, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case "", config.DriverMemory:
		logger.Info().Msg("using in-memory posts storage")
		return &PostStorage{PostRepository: NewMemoryPostRepository(SeedPosts...)}, nil
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(migrations.SetPosts); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &PostStorage{PostRepository: NewPostRepository(db, logger), db: db}, nil
}

// Close releases the posts database, if any.
func (s *PostStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
