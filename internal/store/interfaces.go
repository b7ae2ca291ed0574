package store

import (
	"context"
	"time"

	"github.com/MKhiriev/portfolio-admin/models"
)

// OTPRepository persists one-time passcodes, keyed by subject email.
// At most one live code exists per email; Upsert overwrites any prior value.
type OTPRepository interface {
	// Upsert stores the code, replacing an existing one for the same email.
	Upsert(ctx context.Context, code models.OTPCode) error

	// Find returns the stored code for the email, or ErrOTPNotFound.
	Find(ctx context.Context, email string) (models.OTPCode, error)

	// Delete removes the stored code for the email. Deleting an absent code
	// is not an error.
	Delete(ctx context.Context, email string) error

	// PurgeExpired removes every code whose expiry lies at or before now.
	PurgeExpired(ctx context.Context, now time.Time) error
}

// MessageRepository persists contact-form messages for later review.
type MessageRepository interface {
	// Save stores a new message.
	Save(ctx context.Context, message models.ContactMessage) error

	// List returns all stored messages, newest first.
	List(ctx context.Context) ([]models.ContactMessage, error)

	// Update overwrites the read flag of each given message, matched by ID.
	Update(ctx context.Context, messages []models.ContactMessage) error
}

// CredentialRepository persists the admin password hash override set by the
// password-change flow. While no override row exists, the configured hash
// remains in effect.
type CredentialRepository interface {
	// PasswordHash returns the stored override hash, or ErrNoCredentialStored.
	PasswordHash(ctx context.Context) (string, error)

	// SavePasswordHash stores hash as the new override, replacing any prior one.
	SavePasswordHash(ctx context.Context, hash string) error
}

// AttemptStore holds per-IP failed login attempt records. Implementations
// must be safe for concurrent use; the interface exists so that a shared
// external store can replace the in-process map under horizontal scaling.
type AttemptStore interface {
	// Get returns the record for the IP and whether one exists.
	Get(ip string) (models.LoginAttempt, bool)

	// Set stores the record for the IP, replacing any prior one.
	Set(ip string, attempt models.LoginAttempt)

	// Delete removes the record for the IP. Deleting an absent record is a no-op.
	Delete(ip string)
}
