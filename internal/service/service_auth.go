// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/portfolio-admin/internal/config"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/store"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
)

// adminSubject is the fixed subject of every issued session token. The
// application has exactly one account.
const adminSubject = "admin"

// minPasswordLength is the minimum length accepted for a new admin password.
const minPasswordLength = 8

type authService struct {
	credentials store.CredentialRepository
	attempts    store.AttemptStore
	cfg         config.Auth
	logger      *logger.Logger

	// now is injected for deterministic lockout-window tests.
	now func() time.Time
}

// NewAuthService wires the credential repository and attempt store into an
// [AuthService] governed by the given policy.
func NewAuthService(credentials store.CredentialRepository, attempts store.AttemptStore, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		attempts:    attempts,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// VerifyPassword reports whether password matches the current admin
// credential. A hash stored by the password-change flow takes precedence over
// the configured one.
func (s *authService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	log := logger.FromContext(ctx)

	hash, err := s.credentials.PasswordHash(ctx)
	if errors.Is(err, store.ErrNoCredentialStored) {
		hash = s.cfg.AdminPasswordHash
	} else if err != nil {
		log.Err(err).Str("func", "VerifyPassword").Msg("error loading stored credential")
		return false, fmt.Errorf("error loading stored credential: %w", err)
	}

	return utils.VerifyPassword(password, hash), nil
}

// CheckBruteForce reports whether the IP may attempt a login right now.
//
// A record whose lockout window has fully elapsed is forgotten on sight, so
// stale entries never deny a legitimate retry. While the window is open and
// the attempt count has reached the limit, the remaining time is reported
// rounded up to whole minutes.
func (s *authService) CheckBruteForce(ip string) (allowed bool, retryAfterMinutes int) {
	attempt, ok := s.attempts.Get(ip)
	if !ok {
		return true, 0
	}

	elapsed := s.now().Sub(attempt.LastAttempt)
	if elapsed >= s.cfg.LockoutDuration {
		s.attempts.Delete(ip)
		return true, 0
	}

	if attempt.Count >= s.cfg.MaxLoginAttempts {
		remaining := s.cfg.LockoutDuration - elapsed
		return false, int(math.Ceil(remaining.Minutes()))
	}

	return true, 0
}

// RecordFailedAttempt registers one more failed attempt for the IP and resets
// the lockout window to start from now.
func (s *authService) RecordFailedAttempt(ip string) {
	attempt, _ := s.attempts.Get(ip)
	attempt.Count++
	attempt.LastAttempt = s.now()
	s.attempts.Set(ip, attempt)

	s.logger.Warn().Str("ip", ip).Int("count", attempt.Count).Msg("failed login attempt recorded")
}

// ClearAttempts forgets all recorded failures for the IP. Called on every
// successful login so that earlier failures do not count against future ones.
func (s *authService) ClearAttempts(ip string) {
	s.attempts.Delete(ip)
}

// CreateToken issues a signed session token for the admin subject.
func (s *authService) CreateToken() (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, adminSubject, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error creating session token: %w", err)
	}

	return token, nil
}

// ParseToken validates the raw token string and extracts its subject.
func (s *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, errors.Join(ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// ChangePassword validates the new password, hashes it, and persists the hash
// as the credential override. The override takes effect immediately for all
// subsequent verifications; already-issued session tokens stay valid.
func (s *authService) ChangePassword(ctx context.Context, newPassword, confirmPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "ChangePassword").Msg("error hashing new password")
		return fmt.Errorf("error hashing new password: %w", err)
	}

	if err := s.credentials.SavePasswordHash(ctx, hash); err != nil {
		log.Err(err).Str("func", "ChangePassword").Msg("error persisting new password hash")
		return fmt.Errorf("error persisting new password hash: %w", err)
	}

	log.Info().Msg("admin password changed")
	return nil
}
