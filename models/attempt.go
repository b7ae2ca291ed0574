package models

import "time"

// LoginAttempt tracks failed password attempts from a single client IP.
// A record is created on the first failure, incremented on each subsequent
// one, and removed on success or once the lockout window has elapsed.
type LoginAttempt struct {
	// Count is the number of consecutive failed attempts recorded.
	Count int `json:"count"`

	// LastAttempt is the moment of the most recent failure. The lockout
	// window is measured from this timestamp.
	LastAttempt time.Time `json:"last_attempt"`
}
