// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// insecureSecretKey is the placeholder shipped in sample configs. A server
// started with it would sign cookies with a publicly known key.
const insecureSecretKey = "your-secret-key"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" || cfg.App.SecretKey == insecureSecretKey {
		return ErrInvalidSecretKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.ResetTokenDuration <= 0 || cfg.Session.Duration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AuthRateWindow <= 0 {
		return ErrInvalidAppConfigs
	}

	if !strings.HasPrefix(cfg.App.BaseURL, "http://") && !strings.HasPrefix(cfg.App.BaseURL, "https://") {
		return fmt.Errorf("%w: base url must be absolute", ErrInvalidAppConfigs)
	}

	if cfg.AvatarsEnabled() && (cfg.Avatars.S3Region == "" || cfg.Avatars.PublicBaseURL == "") {
		return ErrInvalidAvatarConfigs
	}

	return nil
}
