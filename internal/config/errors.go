package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSecretKey indicates a missing or placeholder APP_SECRET_KEY.
	ErrInvalidSecretKey = errors.New("secret key is required and must not be the placeholder value")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token or session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAvatarConfigs indicates an S3 bucket configured without
	// a region or public base URL.
	ErrInvalidAvatarConfigs = errors.New("invalid avatar storage configuration")
)
