package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLSessionStorage(t *testing.T, dialect Dialect) (*sqlSessionStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	return &sqlSessionStorage{
		db:     NewDB(conn, dialect, l),
		logger: l,
		now:    func() time.Time { return fixedNow },
	}, mock
}

func testSession() models.Session {
	return models.Session{
		ID:        "sid-1",
		UserID:    42,
		Vanity:    "ann",
		CreatedAt: fixedNow,
		ExpiresAt: fixedNow.Add(24 * time.Hour),
	}
}

func TestSQLSessionStorage_SaveSession_Upserts(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectSQLite)
	session := testSession()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions (id,user_id,vanity,created_at,expires_at) VALUES (?,?,?,?,?) ON CONFLICT (id) DO UPDATE SET vanity = excluded.vanity, expires_at = excluded.expires_at")).
		WithArgs("sid-1", int64(42), "ann", session.CreatedAt, session.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveSession(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSessionStorage_SaveSession_Error(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("db down"))

	err := s.SaveSession(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLSessionStorage_GetSession(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)
	want := testSession()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, vanity, created_at, expires_at FROM sessions WHERE id = $1 AND expires_at > $2")).
		WithArgs("sid-1", fixedNow).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(want.ID, want.UserID, want.Vanity, want.CreatedAt, want.ExpiresAt))

	got, err := s.GetSession(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLSessionStorage_GetSession_NotFoundOrExpired(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)

	mock.ExpectQuery("FROM sessions").WillReturnError(sql.ErrNoRows)

	_, err := s.GetSession(context.Background(), "sid-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSQLSessionStorage_DeleteSession(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1")).
		WithArgs("sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteSession(context.Background(), "sid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSessionStorage_DeleteUserSessions(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE user_id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.DeleteUserSessions(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSessionStorage_DeleteExpiredSessions(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectSQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at <= ?")).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := s.DeleteExpiredSessions(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestSQLSessionStorage_Delete_Error(t *testing.T) {
	s, mock := newTestSQLSessionStorage(t, DialectPostgres)

	mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("db down"))

	err := s.DeleteSession(context.Background(), "sid-1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
