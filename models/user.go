package models

import "time"

// User represents an account together with its public profile attributes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the store and never changes.
	UserID int64 `json:"-"`

	// Email is the unique login identifier. Matching is case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Vanity is the user's unique short name. Empty until claimed.
	Vanity string `json:"vanity,omitempty"`

	// Profile holds the optional fields rendered on the public page.
	Profile Profile `json:"profile"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasVanity reports whether the user has already claimed a short name.
func (u User) HasVanity() bool {
	return u.Vanity != ""
}

// Public returns the subset of the record that may be shown to anyone
// visiting the user's vanity URL.
func (u User) Public() PublicProfile {
	return PublicProfile{
		Vanity:  u.Vanity,
		Profile: u.Profile,
	}
}

// Credentials carries the fields submitted on the register and login forms.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Vanity is optional and only read during registration.
	Vanity string `json:"vanity,omitempty"`
}
