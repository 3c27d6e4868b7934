package store

import (
	"context"
	"time"

	"github.com/MKhiriev/crrd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their profile attributes.
type UserRepository interface {
	// CreateUser inserts a new record and returns it with UserID and
	// timestamps set. Returns ErrEmailAlreadyExists or ErrVanityAlreadyExists
	// on a uniqueness conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByVanity(ctx context.Context, vanity string) (models.User, error)

	// UpdateProfile overwrites every profile attribute of userID.
	UpdateProfile(ctx context.Context, userID int64, profile models.Profile) error

	// ClaimVanity sets the vanity of a user who has none yet. Returns
	// ErrVanityAlreadyClaimed when the user already owns one.
	ClaimVanity(ctx context.Context, userID int64, vanity string) error

	// UpdatePasswordHash replaces oldHash with newHash for userID. Returns
	// ErrNoUserWasFound when the stored hash is no longer oldHash.
	UpdatePasswordHash(ctx context.Context, userID int64, oldHash, newHash string) error

	Ping(ctx context.Context) error
}

// SessionStorage keeps server-side session state.
type SessionStorage interface {
	// SaveSession inserts or replaces a session.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns a live session or ErrSessionNotFound.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	DeleteSession(ctx context.Context, sessionID string) error
	DeleteUserSessions(ctx context.Context, userID int64) error

	// DeleteExpiredSessions purges sessions that expired before now and
	// returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
