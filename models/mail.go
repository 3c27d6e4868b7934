package models

import "time"

// Email is an outbound message handed to a mailer.
type Email struct {
	To      string
	Subject string
	Body    string
}

// AvatarUpload describes a presigned upload slot for a profile picture.
type AvatarUpload struct {
	// UploadURL accepts a single HTTP PUT of the image bytes.
	UploadURL string `json:"upload_url"`

	// PublicURL is where the uploaded image will be served from; it is the
	// value to submit as avatar_url.
	PublicURL string `json:"public_url"`

	ExpiresAt time.Time `json:"expires_at"`
}
