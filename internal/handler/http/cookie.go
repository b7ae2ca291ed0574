// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

const (
	// sessionCookieName is the cookie carrying the signed session token.
	sessionCookieName = "admin_token"

	// sessionCookieMaxAge matches the default token lifetime of 7 days.
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// setSessionCookie attaches the signed session token to the response.
//
// The cookie is HttpOnly so page scripts can never read the token, SameSite
// Lax so cross-site POSTs never carry it, and Secure outside development
// so it only travels over TLS.
func (h *Handler) setSessionCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   !h.development,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an immediately
// expiring empty value. The attributes must match setSessionCookie for the
// browser to treat it as the same cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	// MaxAge < 0 makes net/http emit Max-Age=0, which deletes the cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.development,
		SameSite: http.SameSiteLaxMode,
	})
}
