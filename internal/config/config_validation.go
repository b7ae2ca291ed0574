// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// normalize cleans up values that commonly arrive mangled from deployment
// tooling before validation runs.
//
// The admin password hash is stripped of surrounding quotes (shell exports
// and .env files often carry them) and, when the supplied value is too short
// to be a plausible bcrypt digest, replaced with the development fallback.
func (cfg *StructuredConfig) normalize() {
	hash := strings.Trim(cfg.Auth.AdminPasswordHash, `"'`)
	if len(hash) < minPasswordHashLength {
		hash = DevPasswordHash
	}
	cfg.Auth.AdminPasswordHash = hash

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Outside development mode the baked-in credential defaults are rejected so
// that a production deployment cannot silently run on the insecure fallbacks.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.MaxLoginAttempts < 1 || cfg.Auth.LockoutDuration <= 0 || cfg.Auth.OTPTTL <= 0 {
		return ErrInvalidAuthPolicy
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Development {
		return nil
	}

	if cfg.Auth.AdminPasswordHash == DevPasswordHash {
		return ErrInsecurePasswordHash
	}

	if cfg.Auth.TokenSignKey == DevTokenSignKey || cfg.Auth.TokenSignKey == "" {
		return ErrInsecureTokenSignKey
	}

	if cfg.Auth.AdminEmail == "" {
		return ErrMissingAdminEmail
	}

	return nil
}
