// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/portfolio-admin/internal/mailer"
	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// send-otp
// ─────────────────────────────────────────────

// TestSendOTP_Success verifies the happy path with an empty request body.
func TestSendOTP_Success(t *testing.T) {
	issued := false
	otp := &mockOTPService{
		issueFn: func(_ context.Context) error {
			issued = true
			return nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, otp, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/send-otp", nil)
	rec := httptest.NewRecorder()

	h.sendOTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, issued)
}

// TestSendOTP_WrongOldPassword verifies that a present but wrong oldPassword
// blocks dispatch with 401.
func TestSendOTP_WrongOldPassword(t *testing.T) {
	auth := &mockAuthService{
		verifyPasswordFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}
	otp := &mockOTPService{
		issueFn: func(_ context.Context) error {
			t.Fatal("otp must not be dispatched after failed re-verification")
			return nil
		},
	}

	h := newTestHandler(t, auth, otp, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/send-otp", strings.NewReader(jsonBody(t, models.SendOTPRequest{OldPassword: "nope"})))
	rec := httptest.NewRecorder()

	h.sendOTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Current password is incorrect", decodeError(t, rec.Body.Bytes()))
}

// TestSendOTP_SMTPFailures verifies that delivery failures surface their
// operator-facing diagnostics with 500.
func TestSendOTP_SMTPFailures(t *testing.T) {
	tests := []struct {
		name        string
		issueErr    error
		wantMessage string
	}{
		{"not configured", mailer.ErrNotConfigured, mailer.ErrNotConfigured.Error()},
		{"auth failed", mailer.ErrAuthFailed, mailer.ErrAuthFailed.Error()},
		{"connection failed", mailer.ErrConnectionFailed, mailer.ErrConnectionFailed.Error()},
		{"other failure", assert.AnError, "Failed to send OTP email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otp := &mockOTPService{
				issueFn: func(_ context.Context) error { return tt.issueErr },
			}

			h := newTestHandler(t, &mockAuthService{}, otp, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/send-otp", nil)
			rec := httptest.NewRecorder()

			h.sendOTP(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec.Body.Bytes()))
		})
	}
}

// ─────────────────────────────────────────────
// change-password
// ─────────────────────────────────────────────

func changePasswordBody(t *testing.T, newPassword, confirm, otp string) *strings.Reader {
	t.Helper()
	return strings.NewReader(jsonBody(t, models.ChangePasswordRequest{
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
		OTP:             otp,
	}))
}

// TestChangePassword_Success verifies the full happy path: the OTP is
// redeemed and the new password persisted.
func TestChangePassword_Success(t *testing.T) {
	changedTo := ""
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, newPassword, _ string) error {
			changedTo = newPassword
			return nil
		},
	}
	otp := &mockOTPService{
		verifyFn: func(_ context.Context, code string) (bool, error) { return code == "123456", nil },
	}

	h := newTestHandler(t, auth, otp, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/change-password", changePasswordBody(t, "new password 1", "new password 1", "123456"))
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new password 1", changedTo)
}

// TestChangePassword_Validation verifies that invalid requests are rejected
// with 400 before the single-use OTP is redeemed.
func TestChangePassword_Validation(t *testing.T) {
	tests := []struct {
		name        string
		newPassword string
		confirm     string
		otp         string
		wantMessage string
	}{
		{"missing fields", "", "", "", "All fields are required"},
		{"missing otp", "new password 1", "new password 1", "", "All fields are required"},
		{"mismatch", "new password 1", "something else", "123456", "passwords do not match"},
		{"too short", "short", "short", "123456", "password must be at least 8 characters"},
		{"malformed otp", "new password 1", "new password 1", "12345", "OTP must be 6 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otp := &mockOTPService{
				verifyFn: func(_ context.Context, _ string) (bool, error) {
					t.Fatal("invalid requests must not redeem the otp")
					return false, nil
				},
			}

			h := newTestHandler(t, &mockAuthService{}, otp, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/change-password", changePasswordBody(t, tt.newPassword, tt.confirm, tt.otp))
			rec := httptest.NewRecorder()

			h.changePassword(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec.Body.Bytes()))
		})
	}
}

// TestChangePassword_InvalidOTP verifies that a wrong or expired code blocks
// the change with 401.
func TestChangePassword_InvalidOTP(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _, _ string) error {
			t.Fatal("password must not change without a redeemed otp")
			return nil
		},
	}
	otp := &mockOTPService{
		verifyFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}

	h := newTestHandler(t, auth, otp, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/change-password", changePasswordBody(t, "new password 1", "new password 1", "123456"))
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired OTP", decodeError(t, rec.Body.Bytes()))
}
