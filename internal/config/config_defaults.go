// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// AuthRateLimitDisabled switches the auth rate limiter off. Zero cannot be
// used for that since it selects DefaultAuthRateLimit.
const AuthRateLimitDisabled = -1

// Default values applied to zero fields after all sources are merged.
const (
	DefaultTokenIssuer        = "crrd"
	DefaultResetTokenDuration = time.Hour
	DefaultBaseURL            = "http://localhost:8080"
	DefaultLogLevel           = "info"
	DefaultAuthRateLimit      = 10
	DefaultAuthRateWindow     = time.Minute

	DefaultCookieName    = "crrd_session"
	DefaultSessionTTL    = 24 * time.Hour
	DefaultSweepInterval = 10 * time.Minute

	DefaultHTTPAddress     = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultMailFrom     = "no-reply@crrd.local"
	DefaultSMTPPort     = 587
	DefaultUploadExpiry = 15 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.ResetTokenDuration, DefaultResetTokenDuration)
	setDefault(&cfg.App.BaseURL, DefaultBaseURL)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.App.AuthRateLimit, DefaultAuthRateLimit)
	setDefault(&cfg.App.AuthRateWindow, DefaultAuthRateWindow)

	setDefault(&cfg.Session.CookieName, DefaultCookieName)
	setDefault(&cfg.Session.Duration, DefaultSessionTTL)
	setDefault(&cfg.Session.SweepInterval, DefaultSweepInterval)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Mail.From, DefaultMailFrom)
	setDefault(&cfg.Mail.SMTPPort, DefaultSMTPPort)
	setDefault(&cfg.Avatars.UploadExpiry, DefaultUploadExpiry)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
