package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientConfigNotFound is returned by [ClientConfigRepository.Load]
	// when no API base URL has been saved yet.
	ErrClientConfigNotFound = errors.New("client config was not found")

	// ErrPostNotFound is returned when an update or delete targets a post id
	// that does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrInvalidPost is returned when the database rejects a post, for example
	// on an empty title or content check constraint.
	ErrInvalidPost = errors.New("invalid post")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)
