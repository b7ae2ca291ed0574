package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthMiddleware_NoCookie verifies that requests without a session cookie
// are rejected with 401 before reaching the protected handler.
func TestAuthMiddleware_NoCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run without a session")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", decodeError(t, rec.Body.Bytes()))
}

// TestAuthMiddleware_InvalidToken verifies that a cookie carrying a bad token
// is rejected with 401.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run with an invalid session")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.jwt"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired session", decodeError(t, rec.Body.Bytes()))
}

// TestAuthMiddleware_ValidToken verifies that a valid session reaches the
// protected handler with the subject stored in the request context.
func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt", tokenString)
			return stubToken("valid.jwt"), nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		subject, ok := utils.GetSubjectFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "admin", subject)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
