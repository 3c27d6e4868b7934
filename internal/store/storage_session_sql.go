package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

var sessionColumns = []string{"id", "user_id", "vanity", "created_at", "expires_at"}

// sqlSessionStorage keeps sessions in the sessions table. It is used when no
// Redis address is configured; expired rows are purged by the session
// sweeper worker.
type sqlSessionStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSessionStorage constructs a [SessionStorage] on top of db.
func NewSQLSessionStorage(db *DB, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating sql session storage")
	return &sqlSessionStorage{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Insert("sessions").
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.Vanity, session.CreatedAt.UTC(), session.ExpiresAt.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET vanity = excluded.vanity, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSessionStorage.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlSessionStorage) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Gt{"expires_at": s.now()}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&session.ID, &session.UserID, &session.Vanity, &session.CreatedAt, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlSessionStorage.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (s *sqlSessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.delete(ctx, "*sqlSessionStorage.DeleteSession", sq.Eq{"id": sessionID})
	return err
}

func (s *sqlSessionStorage) DeleteUserSessions(ctx context.Context, userID int64) error {
	_, err := s.delete(ctx, "*sqlSessionStorage.DeleteUserSessions", sq.Eq{"user_id": userID})
	return err
}

func (s *sqlSessionStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return s.delete(ctx, "*sqlSessionStorage.DeleteExpiredSessions", sq.LtOrEq{"expires_at": now.UTC()})
}

func (s *sqlSessionStorage) delete(ctx context.Context, funcName string, where sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Delete("sessions").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error deleting sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
