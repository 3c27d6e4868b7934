package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/models"
)

type sessionService struct {
	sessionStorage store.SessionStorage

	// signKey signs the session id written to the cookie.
	signKey string

	// duration is the lifetime of a new session.
	duration time.Duration

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionStorage store.SessionStorage, cfg config.StructuredConfig, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionStorage: sessionStorage,
		signKey:        cfg.App.SecretKey,
		duration:       cfg.Session.Duration,
		newID:          utils.NewIDGenerator().Generate,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *sessionService) StartSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	session := models.Session{
		ID:        s.newID(),
		UserID:    user.UserID,
		Vanity:    user.Vanity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.duration),
	}

	if err := s.sessionStorage.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*sessionService.StartSession").Int64("user_id", user.UserID).Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	session.Cookie = utils.SignValue(session.ID, s.signKey)
	return session, nil
}

func (s *sessionService) ResumeSession(ctx context.Context, cookie string) (models.Session, error) {
	sessionID, ok := utils.VerifySignedValue(cookie, s.signKey)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	session, err := s.sessionStorage.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.ResumeSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	session.Cookie = cookie
	return session, nil
}

func (s *sessionService) EndSession(ctx context.Context, cookie string) error {
	sessionID, ok := utils.VerifySignedValue(cookie, s.signKey)
	if !ok {
		return nil
	}

	if err := s.sessionStorage.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.EndSession").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (s *sessionService) EndAllUserSessions(ctx context.Context, userID int64) error {
	if err := s.sessionStorage.DeleteUserSessions(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.EndAllUserSessions").Int64("user_id", userID).Msg("error revoking sessions")
		return fmt.Errorf("error revoking sessions: %w", err)
	}

	return nil
}

func (s *sessionService) RefreshVanity(ctx context.Context, session models.Session, vanity string) (models.Session, error) {
	if session.Vanity == vanity {
		return session, nil
	}

	session.Vanity = vanity
	if err := s.sessionStorage.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

func (s *sessionService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionStorage.DeleteExpiredSessions(ctx, s.now())
}
