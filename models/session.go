package models

import "time"

// Session is the server-side state behind the session cookie.
type Session struct {
	// ID is the random session identifier. The cookie carries it signed.
	ID string `json:"id"`

	// UserID identifies the authenticated user.
	UserID int64 `json:"user_id"`

	// Vanity caches the user's short name for display.
	Vanity string `json:"vanity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Cookie is the signed value written to the client. It is not persisted.
	Cookie string `json:"-"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
