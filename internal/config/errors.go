package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthPolicy indicates a nonsensical brute-force or OTP policy
	// (for example, zero max attempts or a non-positive lockout window).
	ErrInvalidAuthPolicy = errors.New("invalid auth policy configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInsecurePasswordHash indicates that a non-development deployment is
	// still relying on the baked-in development password hash.
	ErrInsecurePasswordHash = errors.New("admin password hash is the insecure development default")
	// ErrInsecureTokenSignKey indicates that a non-development deployment is
	// still relying on the baked-in development JWT signing secret.
	ErrInsecureTokenSignKey = errors.New("token sign key is the insecure development default")
	// ErrMissingAdminEmail indicates that no admin email address is configured
	// for OTP dispatch in a non-development deployment.
	ErrMissingAdminEmail = errors.New("admin email address is not configured")
)
