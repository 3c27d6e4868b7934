package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT hits the UNIQUE
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrVanityAlreadyExists is returned when an INSERT or UPDATE hits the
	// UNIQUE constraint on users.vanity.
	ErrVanityAlreadyExists = errors.New("vanity already exists")

	// ErrVanityAlreadyClaimed is returned when a user who already owns a
	// vanity tries to claim another one.
	ErrVanityAlreadyClaimed = errors.New("vanity already claimed")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session id is unknown or the
	// session has expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known dialect.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingSession is returned when a session cannot be serialised for
	// or deserialised from Redis.
	ErrEncodingSession = errors.New("failed to encode session")
)
