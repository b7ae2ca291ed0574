// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "errors"

// Sentinel errors distinguishing operator-facing delivery failures. These are
// surfaced with diagnostic detail (unlike authentication failures, which stay
// deliberately generic towards the client).
var (
	// ErrNotConfigured is returned when no SMTP password is set. The deployment
	// must supply SMTP_PASS (an app password for Gmail) before OTP dispatch works.
	ErrNotConfigured = errors.New("smtp is not configured: SMTP_PASS is not set")

	// ErrAuthFailed is returned when the SMTP server rejects the configured
	// credentials.
	ErrAuthFailed = errors.New("smtp authentication failed: check SMTP_USER and SMTP_PASS (use an app password for Gmail)")

	// ErrConnectionFailed is returned when the SMTP server cannot be reached.
	ErrConnectionFailed = errors.New("could not connect to smtp server: check SMTP_HOST and SMTP_PORT")

	// ErrSendFailed is returned for any other delivery failure.
	ErrSendFailed = errors.New("failed to send otp email")
)
