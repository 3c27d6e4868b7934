package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/crrd/internal/adapter"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/internal/store"
	"github.com/MKhiriev/crrd/internal/utils"
	"github.com/MKhiriev/crrd/internal/validators"
	"github.com/MKhiriev/crrd/models"
)

type profileService struct {
	userRepository store.UserRepository

	// avatarStorage is nil when avatar uploads are not configured.
	avatarStorage adapter.AvatarStorage

	validator validators.Validator
	logger    *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, avatarStorage adapter.AvatarStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (p *profileService) GetOwnProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetOwnProfile").Int64("user_id", userID).Msg("error loading user")
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// UpdateDashboard writes the profile first and then attempts the vanity
// claim, so a rejected claim leaves the profile edit in place. Re-submitting
// the vanity the user already owns is not a claim.
func (p *profileService) UpdateDashboard(ctx context.Context, userID int64, update models.DashboardUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	update.Vanity = utils.NormalizeVanity(update.Vanity)
	if err := p.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("func", "*profileService.UpdateDashboard").Msg("invalid dashboard data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := p.GetOwnProfile(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	err = p.userRepository.UpdateProfile(ctx, userID, update.Profile)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileService.UpdateDashboard").Int64("user_id", userID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}
	user.Profile = update.Profile

	if update.Vanity == "" || update.Vanity == user.Vanity {
		return user, nil
	}

	err = p.userRepository.ClaimVanity(ctx, userID, update.Vanity)
	switch {
	case errors.Is(err, store.ErrVanityAlreadyClaimed):
		return models.User{}, ErrVanityAlreadyClaimed
	case errors.Is(err, store.ErrVanityAlreadyExists):
		return models.User{}, ErrVanityTaken
	case err != nil:
		log.Err(err).Str("func", "*profileService.UpdateDashboard").Int64("user_id", userID).Msg("error claiming vanity")
		return models.User{}, fmt.Errorf("error claiming vanity: %w", err)
	}

	log.Info().Int64("user_id", userID).Str("vanity", update.Vanity).Msg("vanity claimed")
	user.Vanity = update.Vanity
	return user, nil
}

// GetPublicProfile folds vanity the same way registration does. A slug that
// could never have been registered is reported as not found without a query.
func (p *profileService) GetPublicProfile(ctx context.Context, vanity string) (models.PublicProfile, error) {
	vanity = utils.NormalizeVanity(vanity)
	if err := p.validator.Validate(ctx, vanity); err != nil {
		return models.PublicProfile{}, ErrProfileNotFound
	}

	user, err := p.userRepository.FindUserByVanity(ctx, vanity)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicProfile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetPublicProfile").Msg("error loading profile")
		return models.PublicProfile{}, fmt.Errorf("error loading profile: %w", err)
	}

	return user.Public(), nil
}

func (p *profileService) CreateAvatarUpload(ctx context.Context, userID int64) (models.AvatarUpload, error) {
	if p.avatarStorage == nil {
		return models.AvatarUpload{}, ErrAvatarsDisabled
	}

	upload, err := p.avatarStorage.PresignUpload(ctx, userID)
	if err != nil {
		return models.AvatarUpload{}, fmt.Errorf("error creating avatar upload: %w", err)
	}

	return upload, nil
}
