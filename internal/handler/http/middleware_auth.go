// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session authentication.
//
// It reads the session cookie, validates the embedded JWT via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated subject in the request context under [utils.SubjectCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The token has expired, carries a wrong issuer, or fails signature
//     verification.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Warn().Err(ErrNoSessionCookie).Send()
			h.writeError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("session rejected")
			h.writeError(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		// Store the authenticated subject in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
