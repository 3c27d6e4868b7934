// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the crrd server.
//
// [Mailer] delivers password reset links out-of-band. It is backed by an SMTP
// relay ([NewSMTPMailer]) or, when none is configured, by the structured log
// ([NewLogMailer]) so that local setups still see the link.
//
// [AvatarStorage] hands out presigned S3 upload URLs for profile pictures
// ([NewS3AvatarStorage]).
package adapter

import (
	"context"

	"github.com/MKhiriev/crrd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer sends a single outbound email.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// AvatarStorage issues upload slots for profile pictures.
type AvatarStorage interface {
	// PresignUpload returns a presigned PUT URL scoped to a fresh object key
	// under the user's prefix, together with the URL the object will be
	// served from.
	PresignUpload(ctx context.Context, userID int64) (models.AvatarUpload, error)
}
