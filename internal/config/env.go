// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a StructuredConfig from the process environment through the
// `env` and `envPrefix` tags. Secrets are trimmed of surrounding whitespace,
// which secret mounts and `echo` into files tend to leave behind.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.SecretKey = strings.TrimSpace(cfg.App.SecretKey)
	cfg.Storage.Redis.Password = strings.TrimSpace(cfg.Storage.Redis.Password)
	cfg.Mail.Password = strings.TrimSpace(cfg.Mail.Password)

	return &cfg, nil
}
