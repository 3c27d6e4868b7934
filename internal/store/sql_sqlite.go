package store

import (
	"context"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/crrd/internal/logger"
)

// sqliteParams makes concurrent writers wait instead of failing with
// SQLITE_BUSY and turns on foreign keys.
const sqliteParams = "_busy_timeout=5000&_foreign_keys=on"

// SQLite allows one writer at a time.
var sqlitePool = poolSettings{maxOpen: 1, maxIdle: 1}

// NewConnectSQLite opens the database file at dsn (a path or file: URI).
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	return openDB(ctx, "sqlite3", withSQLiteParams(dsn), DialectSQLite, sqlitePool, log)
}

func withSQLiteParams(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteParams
	}
	return dsn + "?" + sqliteParams
}
