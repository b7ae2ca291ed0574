// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	verifyPasswordFn      func(ctx context.Context, password string) (bool, error)
	checkBruteForceFn     func(ip string) (bool, int)
	recordFailedAttemptFn func(ip string)
	clearAttemptsFn       func(ip string)
	createTokenFn         func() (models.Token, error)
	parseTokenFn          func(tokenString string) (models.Token, error)
	changePasswordFn      func(ctx context.Context, newPassword, confirmPassword string) error
}

func (m *mockAuthService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	return m.verifyPasswordFn(ctx, password)
}

func (m *mockAuthService) CheckBruteForce(ip string) (bool, int) {
	if m.checkBruteForceFn == nil {
		return true, 0
	}
	return m.checkBruteForceFn(ip)
}

func (m *mockAuthService) RecordFailedAttempt(ip string) {
	if m.recordFailedAttemptFn != nil {
		m.recordFailedAttemptFn(ip)
	}
}

func (m *mockAuthService) ClearAttempts(ip string) {
	if m.clearAttemptsFn != nil {
		m.clearAttemptsFn(ip)
	}
}

func (m *mockAuthService) CreateToken() (models.Token, error) {
	return m.createTokenFn()
}

func (m *mockAuthService) ParseToken(tokenString string) (models.Token, error) {
	return m.parseTokenFn(tokenString)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, newPassword, confirmPassword string) error {
	return m.changePasswordFn(ctx, newPassword, confirmPassword)
}

// mockOTPService implements service.OTPService for unit tests.
type mockOTPService struct {
	issueFn      func(ctx context.Context) error
	verifyFn     func(ctx context.Context, code string) (bool, error)
	invalidateFn func(ctx context.Context) error
}

func (m *mockOTPService) Issue(ctx context.Context) error {
	return m.issueFn(ctx)
}

func (m *mockOTPService) Verify(ctx context.Context, code string) (bool, error) {
	return m.verifyFn(ctx, code)
}

func (m *mockOTPService) Invalidate(ctx context.Context) error {
	if m.invalidateFn == nil {
		return nil
	}
	return m.invalidateFn(ctx)
}

// mockMessageService implements service.MessageService for unit tests.
type mockMessageService struct {
	submitFn   func(ctx context.Context, request models.ContactRequest) (models.ContactMessage, error)
	listFn     func(ctx context.Context) ([]models.ContactMessage, error)
	markReadFn func(ctx context.Context, messages []models.ContactMessage) error
}

func (m *mockMessageService) Submit(ctx context.Context, request models.ContactRequest) (models.ContactMessage, error) {
	return m.submitFn(ctx, request)
}

func (m *mockMessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return m.listFn(ctx)
}

func (m *mockMessageService) MarkRead(ctx context.Context, messages []models.ContactMessage) error {
	return m.markReadFn(ctx, messages)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// allowed for services the test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, otp service.OTPService, messages service.MessageService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		OTPService:     otp,
		MessageService: messages,
	}
	return NewHandler(svcs, false, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, Subject: "admin"}
}

// sessionCookie finds the session cookie among the recorded Set-Cookie
// headers, failing the test if it is absent.
func sessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie was set", sessionCookieName)
	return nil
}

// decodeError extracts the error message from a JSON error body.
func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}
