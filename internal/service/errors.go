// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrWrongPassword is returned when the supplied password does not match
	// the admin credential.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is returned when a session token fails
	// signature, issuer, or expiry validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidOTPFormat is returned when user input does not reduce to a
	// six-digit code after separators are stripped.
	ErrInvalidOTPFormat = errors.New("OTP must be 6 digits")

	// ErrNoAdminEmail is returned when OTP issuance is requested but no admin
	// email address is configured.
	ErrNoAdminEmail = errors.New("admin email is not configured")

	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrPasswordTooShort is returned when the new password is shorter than
	// the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// Contact form validation errors. Their text is shown to the client as-is.
	ErrInvalidName  = errors.New("name must be at least 2 characters")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrShortMessage = errors.New("message must be at least 10 characters")
)
