package store

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/crrd/internal/logger"
)

var postgresPool = poolSettings{
	maxOpen:     10,
	maxIdle:     4,
	maxIdleTime: 5 * time.Minute,
}

// NewConnectPostgres opens a pgx-backed pool for dsn and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	return openDB(ctx, "pgx", dsn, DialectPostgres, postgresPool, log)
}
