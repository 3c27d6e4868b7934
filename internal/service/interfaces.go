package service

import (
	"context"

	"github.com/MKhiriev/crrd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and verifies credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// SessionService manages server-side sessions and the signed cookie values
// that name them.
type SessionService interface {
	// StartSession creates a session for user. The returned session carries
	// the signed cookie value in Cookie.
	StartSession(ctx context.Context, user models.User) (models.Session, error)

	// ResumeSession resolves a signed cookie value to a live session.
	ResumeSession(ctx context.Context, cookie string) (models.Session, error)

	// EndSession deletes the session named by cookie. Unknown or forged
	// cookies are ignored.
	EndSession(ctx context.Context, cookie string) error

	EndAllUserSessions(ctx context.Context, userID int64) error

	// RefreshVanity updates the vanity cached in session.
	RefreshVanity(ctx context.Context, session models.Session, vanity string) (models.Session, error)

	// SweepExpiredSessions purges expired sessions and reports how many
	// were removed.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

// ProfileService reads and edits profiles.
type ProfileService interface {
	GetOwnProfile(ctx context.Context, userID int64) (models.User, error)

	// UpdateDashboard overwrites the profile of userID and claims
	// update.Vanity when the user has none yet. It returns the fresh record.
	UpdateDashboard(ctx context.Context, userID int64, update models.DashboardUpdate) (models.User, error)

	GetPublicProfile(ctx context.Context, vanity string) (models.PublicProfile, error)

	CreateAvatarUpload(ctx context.Context, userID int64) (models.AvatarUpload, error)
}

// PasswordResetService implements the forgot/reset password flow.
type PasswordResetService interface {
	// RequestReset mails a reset link when email names an account. The
	// outcome is the same whether or not the account exists.
	RequestReset(ctx context.Context, email string) error

	ValidateToken(ctx context.Context, token string) (models.Token, error)

	// ResetPassword sets a new password for the account the token was
	// issued for and revokes all its sessions.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
