// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// crrd HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the site.
package app

const (
	// MsgWelcome is the body of the landing page.
	MsgWelcome = "Welcome to crrd. Register to claim your vanity URL."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for every failed login. It never
	// tells whether the email or the password was wrong.
	MsgInvalidCredentials = "invalid credentials"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgVanityTaken is returned when the requested vanity belongs to
	// another account.
	MsgVanityTaken = "vanity already taken"

	// MsgVanityAlreadyClaimed is returned when a user who already owns a
	// vanity tries to claim another one.
	MsgVanityAlreadyClaimed = "you already claimed a vanity name"

	// MsgTokenIsExpiredOrInvalid is returned for every reset token failure.
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	MsgProfileNotFound = "profile not found"

	// MsgResetRequested is the single response to every forgot-password
	// submission, whether or not the account exists.
	MsgResetRequested = "if an account exists for that email, a reset link has been sent"

	MsgAvatarsDisabled = "avatar uploads are not available"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "too many requests"

	MsgServiceUnavailable = "service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
