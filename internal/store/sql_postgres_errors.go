package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are returned unchanged.
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if sentinel := classifyPgError(pgErr); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

// classifyPgError maps a PostgreSQL error code to a sentinel.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
//
//   - Class 23: check and not-null violations: [ErrInvalidPost]
//   - Class 22: data exceptions (e.g. an over-long value): [ErrInvalidPost]
//   - 02000 no data: [ErrPostNotFound]
func classifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return ErrInvalidPost

	case pgerrcode.DataException,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NullValueNotAllowedDataException:
		return ErrInvalidPost

	case pgerrcode.NoData:
		return ErrPostNotFound
	}

	return nil
}
