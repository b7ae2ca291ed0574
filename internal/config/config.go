// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Development fallbacks. These keep a fresh checkout runnable without any
// environment setup and are rejected by validation outside development mode.
const (
	// DevPasswordHash is the bcrypt hash of the development admin password.
	DevPasswordHash = "$2a$10$9KQVl24BG3HuHkCFGgfm9eSSWPOBFhbkCpZJ5u7Idw0n.bm7Uw2Ay"

	// DevTokenSignKey is the development JWT signing secret.
	DevTokenSignKey = "dev-secret-key-change-in-production"

	// minPasswordHashLength is the minimum length an environment-supplied
	// password hash must have to be considered a plausible bcrypt digest.
	// Shorter values are ignored in favour of the development fallback.
	minPasswordHashLength = 50
)

// StructuredConfig is the top-level configuration container for the
// portfolio-admin application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the deployment mode and
	// the application version.
	App App `envPrefix:"APP_"`

	// Auth holds the admin credential, token parameters, and the
	// brute-force/OTP policy windows.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the embedded database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// SMTP holds the outbound email settings used for OTP dispatch.
	SMTP SMTP `envPrefix:"SMTP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Development marks the deployment as a development instance. In this
	// mode the baked-in credential defaults are accepted and the session
	// cookie is issued without the Secure attribute.
	// Env: APP_DEVELOPMENT
	Development bool `env:"DEVELOPMENT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the single admin credential and the authentication policy.
type Auth struct {
	// AdminPasswordHash is the bcrypt hash of the admin password. An
	// environment-supplied value shorter than a plausible bcrypt digest is
	// ignored in favour of the development fallback.
	// Env: AUTH_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: AUTH_JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT. It is
	// validated on every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "168h" for the default 7 days).
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminEmail is the fixed address OTP codes are dispatched to and keyed by.
	// Env: AUTH_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// MaxLoginAttempts is the number of failed password attempts after which
	// an IP is locked out.
	// Env: AUTH_MAX_LOGIN_ATTEMPTS
	MaxLoginAttempts int `env:"MAX_LOGIN_ATTEMPTS"`

	// LockoutDuration is the window during which a locked-out IP is denied
	// further attempts (e.g. "15m").
	// Env: AUTH_LOCKOUT_DURATION
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`

	// OTPTTL is how long an issued one-time passcode remains valid (e.g. "10m").
	// Env: AUTH_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database that stores
// OTP codes, contact messages, and the credential override row.
type DB struct {
	// DSN is the SQLite database file path (e.g. "./portfolio-admin.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// SMTP holds outbound mail settings for OTP dispatch.
type SMTP struct {
	// Host is the SMTP server hostname (e.g. "smtp.gmail.com").
	// Env: SMTP_HOST
	Host string `env:"HOST"`

	// Port is the SMTP server port (e.g. 587).
	// Env: SMTP_PORT
	Port int `env:"PORT"`

	// User is the SMTP account used for authentication and as the default
	// sender address.
	// Env: SMTP_USER
	User string `env:"USER"`

	// Password is the SMTP account password (an app password for Gmail).
	// Env: SMTP_PASS
	Password string `env:"PASS"`

	// From is the sender shown on outgoing mail. Defaults to User when empty.
	// Env: SMTP_FROM
	From string `env:"FROM"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Development defaults for fields still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the baseline configuration applied underneath all other
// sources. Credential defaults are insecure by design and rejected by
// validation outside development mode.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			AdminPasswordHash: DevPasswordHash,
			TokenSignKey:      DevTokenSignKey,
			TokenIssuer:       "portfolio-admin",
			TokenDuration:     7 * 24 * time.Hour,
			MaxLoginAttempts:  5,
			LockoutDuration:   15 * time.Minute,
			OTPTTL:            10 * time.Minute,
		},
		Storage: Storage{
			DB: DB{DSN: "portfolio-admin.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		SMTP: SMTP{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}
