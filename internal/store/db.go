// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/migrations"
)

// Dialect names the SQL flavour behind a DB.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps *sql.DB with the dialect-aware query builder and the
// unique-violation classifier for that dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection. It is used by the dialect constructors and
// by tests that supply a sqlmock connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnectDB opens the database named by cfg.DSN. The scheme selects the
// dialect: postgres:// and postgresql:// use pgx, sqlite:// and file: use
// go-sqlite3.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("unsupported dsn")
		return nil, err
	}

	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return NewConnectPostgres(ctx, dsn, log)
	}
}

// poolSettings are the database/sql pool limits applied per dialect.
type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxIdleTime time.Duration
}

func openDB(ctx context.Context, driver, dsn string, dialect Dialect, pool poolSettings, log *logger.Logger) (*DB, error) {
	log = &logger.Logger{Logger: log.With().Str("dialect", string(dialect)).Logger()}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "openDB").Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", dialect, err)
	}

	conn.SetMaxOpenConns(pool.maxOpen)
	conn.SetMaxIdleConns(pool.maxIdle)
	if pool.maxIdleTime > 0 {
		conn.SetConnMaxIdleTime(pool.maxIdleTime)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging %s database: %w", dialect, err)
	}
	log.Info().Str("func", "openDB").Msg("connected to database successfully")

	return NewDB(conn, dialect, log), nil
}

// ParseDSN resolves the dialect of dsn and returns the driver-level DSN.
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return DialectSQLite, "file:" + path, nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", ErrUnsupportedDSN
	}
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
