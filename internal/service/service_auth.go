package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/internal/validators"
	"github.com/MKhiriev/crrd/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks credentials before they reach the store.
	validator validators.Validator

	// hashPassword and comparePassword default to the bcrypt helpers in utils.
	hashPassword    func(password string) (string, error)
	comparePassword func(hash, password string) bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validators.NewUserValidator(),
		hashPassword:    utils.HashPassword,
		comparePassword: utils.ComparePassword,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and the optional vanity is case-folded before
// validation. Uniqueness is decided by the store's constraints, never by a
// pre-check.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a field is blank or malformed.
//   - ErrEmailAlreadyRegistered / ErrVanityTaken on a uniqueness conflict.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = utils.NormalizeEmail(creds.Email)
	creds.Vanity = utils.NormalizeVanity(creds.Vanity)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hashPassword(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Email,
		PasswordHash: hash,
		Vanity:       creds.Vanity,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailAlreadyRegistered
	case errors.Is(err, store.ErrVanityAlreadyExists):
		return models.User{}, ErrVanityTaken
	case err != nil:
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// For an unknown email a comparison against a dummy hash still runs so the
// response time does not reveal whether the account exists.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = utils.NormalizeEmail(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.CompareDummyPassword(creds.Password)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.comparePassword(foundUser.PasswordHash, creds.Password) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
