package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrVanityTaken            = errors.New("vanity already taken")
	ErrVanityAlreadyClaimed   = errors.New("vanity already claimed")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")

	ErrSessionNotFound = errors.New("session not found or expired")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrAvatarsDisabled = errors.New("avatar uploads are not configured")
)
