// Package service implements the application business logic: password
// verification with brute-force protection, one-time passcode issuance and
// redemption, session token management, and contact message handling.
//
// Services hold no transport concerns; the HTTP layer translates their
// sentinel errors into status codes and client-facing messages.
package service
