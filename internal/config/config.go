// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the crrd
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the secret key,
	// reset token parameters and auth rate limits.
	App App `envPrefix:"APP_"`

	// Session holds cookie and lifetime settings for server-side sessions.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the relational database and the
	// optional Redis instance.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds outbound SMTP settings. When SMTPHost is empty, mails are
	// written to the log instead of being sent.
	Mail Mail `envPrefix:"MAIL_"`

	// Avatars holds S3 settings for avatar uploads. When S3Bucket is empty,
	// avatar uploads are disabled.
	Avatars Avatars `envPrefix:"AVATARS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey signs session cookies and password reset tokens.
	// Must be kept confidential. Required.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`

	// TokenIssuer is the "iss" claim embedded in every reset token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// ResetTokenDuration specifies how long a password reset token remains
	// valid after issuance.
	// Env: APP_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION" json:"reset_token_duration"`

	// BaseURL is the externally visible root used to build reset links.
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// AuthRateLimit is the number of auth form submissions allowed per
	// client IP inside AuthRateWindow. Zero selects DefaultAuthRateLimit;
	// any negative value (see AuthRateLimitDisabled) turns the limiter off.
	// Env: APP_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" json:"auth_rate_limit"`

	// AuthRateWindow is the fixed window used by the auth rate limiter.
	// Env: APP_AUTH_RATE_WINDOW
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" json:"auth_rate_window"`
}

// Session holds server-side session settings.
type Session struct {
	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME" json:"cookie_name"`

	// Duration is the session lifetime.
	// Env: SESSION_DURATION
	Duration time.Duration `env:"DURATION" json:"duration"`

	// SecureCookie marks the session cookie Secure (HTTPS only).
	// Env: SESSION_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE" json:"secure_cookie"`

	// SweepInterval is how often expired sessions are purged from the
	// SQL session store.
	// Env: SESSION_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" json:"sweep_interval"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`

	// Redis holds the optional Redis settings. When Address is empty,
	// sessions live in the database and rate limiting is in-memory.
	Redis Redis `envPrefix:"REDIS_" json:"redis"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the dialect by scheme:
	// "postgres://" or "postgresql://" for PostgreSQL,
	// "sqlite://path" or "file:path" for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Redis holds connection settings for Redis.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS" json:"address"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD" json:"password"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB" json:"db"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// Mail holds outbound SMTP settings.
type Mail struct {
	SMTPHost string `env:"SMTP_HOST" json:"smtp_host"`
	SMTPPort int    `env:"SMTP_PORT" json:"smtp_port"`
	Username string `env:"USERNAME" json:"username"`
	Password string `env:"PASSWORD" json:"password"`
	From     string `env:"FROM" json:"from"`
}

// Avatars holds S3 settings for presigned avatar uploads.
type Avatars struct {
	S3Bucket    string `env:"S3_BUCKET" json:"s3_bucket"`
	S3Region    string `env:"S3_REGION" json:"s3_region"`
	S3Endpoint  string `env:"S3_ENDPOINT" json:"s3_endpoint"`
	S3AccessKey string `env:"S3_ACCESS_KEY" json:"s3_access_key"`
	S3SecretKey string `env:"S3_SECRET_KEY" json:"s3_secret_key"`

	// PublicBaseURL is prepended to object keys to build the URL stored
	// in a profile's avatar_url.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" json:"public_base_url"`

	// UploadExpiry is the lifetime of a presigned upload URL.
	UploadExpiry time.Duration `env:"UPLOAD_EXPIRY" json:"upload_expiry"`
}

// RedisEnabled reports whether a Redis address is configured.
func (cfg *StructuredConfig) RedisEnabled() bool {
	return cfg.Storage.Redis.Address != ""
}

// MailEnabled reports whether an SMTP relay is configured.
func (cfg *StructuredConfig) MailEnabled() bool {
	return cfg.Mail.SMTPHost != ""
}

// AvatarsEnabled reports whether S3 avatar uploads are configured.
func (cfg *StructuredConfig) AvatarsEnabled() bool {
	return cfg.Avatars.S3Bucket != ""
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to the merged result before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
