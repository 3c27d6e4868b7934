package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/crrd/internal/adapter"
	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/internal/validators"
	"github.com/MKhiriev/crrd/models"
)

// ResetTokenAudience scopes reset tokens to the password reset purpose. A
// token signed with the same key for any other audience is rejected.
const ResetTokenAudience = "password-reset-salt"

const resetMailSubject = "Reset your crrd password"

type passwordResetService struct {
	userRepository store.UserRepository
	sessionService SessionService
	mailer         adapter.Mailer
	validator      validators.Validator

	tokenParams utils.ResetTokenParams
	baseURL     string

	hashPassword func(password string) (string, error)

	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	sessionService SessionService,
	mailer adapter.Mailer,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		sessionService: sessionService,
		mailer:         mailer,
		validator:      validators.NewUserValidator(),
		tokenParams: utils.ResetTokenParams{
			Issuer:   cfg.TokenIssuer,
			Audience: ResetTokenAudience,
			Duration: cfg.ResetTokenDuration,
			SignKey:  cfg.SecretKey,
			Now:      time.Now,
		},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		hashPassword: utils.HashPassword,
		logger:       logger,
	}
}

// RequestReset never reports whether the account exists: an unknown email
// and a mail delivery failure both return nil after logging.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = utils.NormalizeEmail(email)
	if err := s.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "*passwordResetService.RequestReset").Msg("reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.RequestReset").Msg("error looking up user")
		return nil
	}

	fingerprint := utils.PasswordFingerprint(user.PasswordHash, s.tokenParams.SignKey)
	token, err := utils.GenerateResetToken(user.Email, fingerprint, s.tokenParams)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.RequestReset").Msg("error generating reset token")
		return nil
	}

	if err = s.mailer.Send(ctx, s.resetMail(user.Email, token.String())); err != nil {
		log.Err(err).Str("func", "*passwordResetService.RequestReset").Int64("user_id", user.UserID).Msg("error sending reset mail")
		return nil
	}

	log.Info().Int64("user_id", user.UserID).Msg("reset link sent")
	return nil
}

// ValidateToken accepts a token only while the account's password is the one
// it was issued against. A successful reset therefore retires the token.
func (s *passwordResetService) ValidateToken(ctx context.Context, token string) (models.Token, error) {
	parsed, _, err := s.redeemable(ctx, token)
	return parsed, err
}

func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	_, user, err := s.redeemable(ctx, token)
	if err != nil {
		return err
	}

	if err = s.validator.Validate(ctx, models.Credentials{Password: newPassword}, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	// a concurrent reset with the same token loses here
	err = s.userRepository.UpdatePasswordHash(ctx, user.UserID, user.PasswordHash, hash)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.ResetPassword").Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	if err = s.sessionService.EndAllUserSessions(ctx, user.UserID); err != nil {
		return err
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset")
	return nil
}

// redeemable verifies the token and loads its account. Every failure,
// including a fingerprint that no longer matches, is ErrTokenIsExpiredOrInvalid.
func (s *passwordResetService) redeemable(ctx context.Context, token string) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateResetToken(token, s.tokenParams)
	if err != nil {
		log.Debug().Err(err).Str("func", "*passwordResetService.redeemable").Msg("reset token rejected")
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := s.userRepository.FindUserByEmail(ctx, parsed.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.redeemable").Msg("error looking up user")
		return models.Token{}, models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	current := utils.PasswordFingerprint(user.PasswordHash, s.tokenParams.SignKey)
	if subtle.ConstantTimeCompare([]byte(current), []byte(parsed.PasswordFingerprint)) != 1 {
		log.Debug().Str("func", "*passwordResetService.redeemable").Int64("user_id", user.UserID).Msg("reset token already used")
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return parsed, user, nil
}

func (s *passwordResetService) resetMail(to, token string) models.Email {
	link := s.baseURL + "/reset-password/" + token
	return models.Email{
		To:      to,
		Subject: resetMailSubject,
		Body: "Someone asked to reset the password of your crrd account.\n\n" +
			"Open the link below within the next " + s.tokenParams.Duration.String() + " to choose a new one:\n\n" +
			link + "\n\n" +
			"If you did not ask for this, ignore this message.",
	}
}
