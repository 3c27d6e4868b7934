// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionInContext is returned when a handler behind requireSession
	// runs without a session in its context. It indicates a routing bug.
	ErrNoSessionInContext = errors.New("no session in request context")

	// ErrMissingResetToken is returned when the reset route is reached with an
	// empty token path segment.
	ErrMissingResetToken = errors.New("missing reset token")
)
