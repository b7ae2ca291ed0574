package service

import (
	"context"

	"github.com/MKhiriev/portfolio-admin/models"
)

// AuthService verifies the admin credential, enforces the per-IP lockout
// policy, and manages session tokens.
type AuthService interface {
	// VerifyPassword reports whether password matches the current admin
	// credential. The stored override hash takes precedence over the
	// configured one. The error is non-nil only on storage failure.
	VerifyPassword(ctx context.Context, password string) (bool, error)

	// CheckBruteForce reports whether the IP may attempt a login. When denied,
	// retryAfterMinutes carries the remaining lockout rounded up to whole
	// minutes.
	CheckBruteForce(ip string) (allowed bool, retryAfterMinutes int)

	// RecordFailedAttempt registers one more failed attempt for the IP.
	RecordFailedAttempt(ip string)

	// ClearAttempts forgets all recorded failures for the IP.
	ClearAttempts(ip string)

	// CreateToken issues a signed session token for the admin subject.
	CreateToken() (models.Token, error)

	// ParseToken validates the raw token string and extracts its subject.
	// Returns ErrTokenIsExpiredOrInvalid on any validation failure.
	ParseToken(tokenString string) (models.Token, error)

	// ChangePassword validates and persists a new admin password. The caller
	// is responsible for authorizing the change (OTP redemption) beforehand.
	ChangePassword(ctx context.Context, newPassword, confirmPassword string) error
}

// OTPService issues and redeems one-time passcodes for the admin email.
type OTPService interface {
	// Issue generates a fresh code, stores it, and dispatches it by email.
	// Any previously issued code is invalidated.
	Issue(ctx context.Context) error

	// Verify redeems the code. A successful redemption consumes the stored
	// code; expired or mismatched codes return (false, nil). The error is
	// non-nil only on storage failure.
	Verify(ctx context.Context, code string) (bool, error)

	// Invalidate discards any stored code without redeeming it.
	Invalidate(ctx context.Context) error
}

// MessageService handles contact-form submissions and their review.
type MessageService interface {
	// Submit validates, normalizes, and stores a contact-form submission.
	Submit(ctx context.Context, request models.ContactRequest) (models.ContactMessage, error)

	// List returns all stored messages, newest first.
	List(ctx context.Context) ([]models.ContactMessage, error)

	// MarkRead overwrites the read flag of each given message, matched by ID.
	MarkRead(ctx context.Context, messages []models.ContactMessage) error
}
