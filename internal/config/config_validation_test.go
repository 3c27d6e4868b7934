// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid minimal config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing secret key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SecretKey = "" },
			wantErr: ErrInvalidSecretKey,
		},
		{
			name:    "placeholder secret key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SecretKey = "your-secret-key" },
			wantErr: ErrInvalidSecretKey,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative reset token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ResetTokenDuration = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:   "disabled auth rate limit",
			mutate: func(cfg *StructuredConfig) { cfg.App.AuthRateLimit = AuthRateLimitDisabled },
		},
		{
			name:    "zero auth rate window",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AuthRateWindow = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "relative base url",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BaseURL = "crrd.example" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bucket without region",
			mutate:  func(cfg *StructuredConfig) { cfg.Avatars.S3Bucket = "avatars" },
			wantErr: ErrInvalidAvatarConfigs,
		},
		{
			name: "complete avatar config",
			mutate: func(cfg *StructuredConfig) {
				cfg.Avatars.S3Bucket = "avatars"
				cfg.Avatars.S3Region = "eu-central-1"
				cfg.Avatars.PublicBaseURL = "https://cdn.example"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
