package models

// Card sizes accepted for the public profile card.
const (
	CardSizeSmall  = "small"
	CardSizeMedium = "medium"
	CardSizeLarge  = "large"
)

// Profile contains the user-editable attributes shown on the public page.
// All fields are optional; an empty string means "not set".
type Profile struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	CardSize    string `json:"card_size"`
	Twitter     string `json:"twitter"`
	GitHub      string `json:"github"`
	Website     string `json:"website"`
}

// PublicProfile is what GET /{vanity} renders. It deliberately has no
// email, id or password hash.
type PublicProfile struct {
	Vanity string `json:"vanity"`
	Profile
}

// DashboardUpdate is the payload of a dashboard submission: the profile
// fields to overwrite plus an optional one-time vanity claim.
type DashboardUpdate struct {
	Profile

	Vanity string `json:"vanity,omitempty"`
}
