package models

import "time"

// OTPCode is a single one-time passcode issued to the admin email address.
// At most one live code exists per email: issuing a new one overwrites any
// previous value.
type OTPCode struct {
	// Email is the subject address the code was issued for.
	Email string `json:"email"`

	// Code is the six-digit decimal passcode.
	Code string `json:"code"`

	// ExpiresAt is the moment after which the code is no longer accepted.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is no longer valid at the given moment.
func (o OTPCode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
