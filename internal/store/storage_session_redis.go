package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

const (
	redisSessionPrefix     = "crrd:session:"
	redisUserSessionPrefix = "crrd:user_sessions:"
)

// redisSessionStorage keeps each session as a JSON string whose TTL matches
// the session expiry. A per-user set indexes session ids so that all sessions
// of a user can be revoked at once.
type redisSessionStorage struct {
	client redis.Cmdable
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisSessionStorage constructs a [SessionStorage] on top of a Redis client.
func NewRedisSessionStorage(client redis.Cmdable, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		client: client,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func sessionKey(sessionID string) string {
	return redisSessionPrefix + sessionID
}

func userSessionsKey(userID int64) string {
	return redisUserSessionPrefix + strconv.FormatInt(userID, 10)
}

func (s *redisSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	if err = s.client.Set(ctx, sessionKey(session.ID), string(data), ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// the index lives as long as the longest-lived session it points to
	index := userSessionsKey(session.UserID)
	if err = s.client.SAdd(ctx, index, session.ID).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.SaveSession").Msg("error indexing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = s.client.ExpireNX(ctx, index, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = s.client.ExpireGT(ctx, index, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *redisSessionStorage) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	if session.IsExpired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes the session and drops its id from the owner's index.
// A payload that cannot be decoded is still deleted; only the index cleanup
// is skipped.
func (s *redisSessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	data, err := s.client.GetDel(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		log.Warn().Err(err).Str("func", "*redisSessionStorage.DeleteSession").Msg("undecodable session deleted without index cleanup")
		return nil
	}

	if err = s.client.SRem(ctx, userSessionsKey(session.UserID), sessionID).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.DeleteSession").Int64("user_id", session.UserID).Msg("error unindexing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *redisSessionStorage) DeleteUserSessions(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)
	index := userSessionsKey(userID)

	ids, err := s.client.SMembers(ctx, index).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.DeleteUserSessions").Msg("error listing user sessions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, index)

	if err = s.client.Del(ctx, keys...).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.DeleteUserSessions").Msg("error deleting user sessions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions is a no-op: Redis drops expired keys by itself.
func (s *redisSessionStorage) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}
