package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, UniqueViolation},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation}, CheckViolation},
		{"not null", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, NotNullViolation},
		{"other pg code", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Unclassified},
		{"wrapped unique", fmt.Errorf("%w: %w", ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.UniqueViolation}), UniqueViolation},
		{"plain error", errors.New("boom"), Unclassified},
		{"nil", nil, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_ConflictColumn(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, "email", c.ConflictColumn(&pgconn.PgError{ConstraintName: "users_email_key"}))
	assert.Equal(t, "vanity", c.ConflictColumn(&pgconn.PgError{ConstraintName: "users_vanity_key"}))
	assert.Equal(t, "vanity", c.ConflictColumn(&pgconn.PgError{Detail: "Key (vanity)=(ann) already exists."}))
	assert.Equal(t, "", c.ConflictColumn(&pgconn.PgError{ConstraintName: "sessions_pkey"}))
	assert.Equal(t, "", c.ConflictColumn(errors.New("boom")))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"unique", errors.New("UNIQUE constraint failed: users.email"), UniqueViolation},
		{"check", errors.New("CHECK constraint failed: vanity = lower(vanity)"), CheckViolation},
		{"not null", errors.New("NOT NULL constraint failed: users.email"), NotNullViolation},
		{"wrapped", fmt.Errorf("%w: %w", ErrExecutingStatement, errors.New("UNIQUE constraint failed: users.vanity")), UniqueViolation},
		{"other", errors.New("database is locked"), Unclassified},
		{"nil", nil, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_ConflictColumn(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, "email", c.ConflictColumn(errors.New("UNIQUE constraint failed: users.email")))
	assert.Equal(t, "vanity", c.ConflictColumn(errors.New("UNIQUE constraint failed: users.vanity")))
	assert.Equal(t, "a", c.ConflictColumn(errors.New("UNIQUE constraint failed: t.a, t.b")))
	assert.Equal(t, "", c.ConflictColumn(errors.New("database is locked")))
	assert.Equal(t, "", c.ConflictColumn(nil))
}
