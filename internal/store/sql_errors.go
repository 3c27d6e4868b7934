package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories which integrity rule a failed statement violated.
type ErrorClassification int

const (
	// Unclassified covers every error that is not an integrity violation.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the statement.
	UniqueViolation

	// CheckViolation means a CHECK constraint rejected the statement.
	CheckViolation

	// NotNullViolation means a NOT NULL constraint rejected the statement.
	NotNullViolation
)

// ErrorClassificator maps dialect-specific driver errors to
// [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification

	// ConflictColumn returns the column named by a unique violation, or ""
	// when it cannot be determined.
	ConflictColumn(err error) string
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return Unclassified
}

// ConflictColumn implements [ErrorClassificator]. PostgreSQL names implicit
// unique constraints "<table>_<column>_key".
func (c *PostgresErrorClassifier) ConflictColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	for _, column := range uniqueColumns {
		if strings.Contains(pgErr.ConstraintName, "_"+column) ||
			strings.HasPrefix(pgErr.Detail, "Key ("+column+")") {
			return column
		}
	}

	return ""
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
//
// go-sqlite3 only exposes its typed errors when built with cgo, so the
// classifier reads the stable constraint messages instead, e.g.
// "UNIQUE constraint failed: users.email".
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

const (
	sqliteUniqueFailed  = "UNIQUE constraint failed: "
	sqliteCheckFailed   = "CHECK constraint failed"
	sqliteNotNullFailed = "NOT NULL constraint failed"
)

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, sqliteUniqueFailed):
		return UniqueViolation
	case strings.Contains(msg, sqliteCheckFailed):
		return CheckViolation
	case strings.Contains(msg, sqliteNotNullFailed):
		return NotNullViolation
	}

	return Unclassified
}

// ConflictColumn implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) ConflictColumn(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	idx := strings.Index(msg, sqliteUniqueFailed)
	if idx < 0 {
		return ""
	}

	// "users.email" or, for composite keys, "users.a, users.b"
	target := msg[idx+len(sqliteUniqueFailed):]
	if comma := strings.Index(target, ","); comma >= 0 {
		target = target[:comma]
	}
	if dot := strings.LastIndex(target, "."); dot >= 0 {
		target = target[dot+1:]
	}

	return strings.TrimSpace(target)
}

// uniqueColumns lists the users columns guarded by a UNIQUE constraint.
var uniqueColumns = []string{"email", "vanity"}

// conflictError translates a unique violation on users into the matching
// sentinel. ok is false when err is not a recognised unique violation.
func (db *DB) conflictError(err error) (error, bool) {
	if db.errorClassificator.Classify(err) != UniqueViolation {
		return nil, false
	}

	switch db.errorClassificator.ConflictColumn(err) {
	case "email":
		return ErrEmailAlreadyExists, true
	case "vanity":
		return ErrVanityAlreadyExists, true
	}

	return nil, false
}
