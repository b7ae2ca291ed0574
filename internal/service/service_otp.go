// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/portfolio-admin/internal/config"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/mailer"
	"github.com/MKhiriev/portfolio-admin/internal/store"
	"github.com/MKhiriev/portfolio-admin/models"
)

// Generated codes lie in [otpMin, otpMin+otpSpan): always six decimal digits,
// never with a leading zero.
const (
	otpMin  = 100000
	otpSpan = 900000
)

type otpService struct {
	codes  store.OTPRepository
	sender mailer.Sender
	cfg    config.Auth
	logger *logger.Logger

	// now is injected for deterministic expiry tests.
	now func() time.Time
}

// NewOTPService wires the passcode repository and mail sender into an
// [OTPService] governed by the given policy.
func NewOTPService(codes store.OTPRepository, sender mailer.Sender, cfg config.Auth, logger *logger.Logger) OTPService {
	return &otpService{
		codes:  codes,
		sender: sender,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Issue generates a fresh six-digit code, stores it with the configured TTL,
// and dispatches it to the admin email. Storing happens before dispatch so a
// delivered email always refers to a redeemable code; a dispatch failure
// leaves a code that simply expires unredeemed.
func (s *otpService) Issue(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.cfg.AdminEmail == "" {
		return ErrNoAdminEmail
	}

	// Opportunistic cleanup; a failure here must not block issuance.
	if err := s.codes.PurgeExpired(ctx, s.now()); err != nil {
		log.Warn().Err(err).Str("func", "Issue").Msg("error purging expired otp codes")
	}

	code, err := generateOTP()
	if err != nil {
		log.Err(err).Str("func", "Issue").Msg("error generating otp code")
		return fmt.Errorf("error generating otp code: %w", err)
	}

	otp := models.OTPCode{
		Email:     s.cfg.AdminEmail,
		Code:      code,
		ExpiresAt: s.now().Add(s.cfg.OTPTTL),
	}
	if err := s.codes.Upsert(ctx, otp); err != nil {
		log.Err(err).Str("func", "Issue").Msg("error storing otp code")
		return fmt.Errorf("error storing otp code: %w", err)
	}

	if err := s.sender.SendOTPEmail(ctx, s.cfg.AdminEmail, code); err != nil {
		return err
	}

	log.Info().Time("expires_at", otp.ExpiresAt).Msg("otp issued")
	return nil
}

// Verify redeems the code for the admin email. Redemption is single-use: a
// matching code is deleted before reporting success, and an expired one is
// deleted on sight. Mismatches and absent codes report (false, nil) so the
// caller cannot distinguish them.
func (s *otpService) Verify(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx)

	stored, err := s.codes.Find(ctx, s.cfg.AdminEmail)
	if errors.Is(err, store.ErrOTPNotFound) {
		log.Debug().Msg("otp verification failed: no code stored")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "Verify").Msg("error loading stored otp code")
		return false, fmt.Errorf("error loading stored otp code: %w", err)
	}

	if stored.Expired(s.now()) {
		if err := s.codes.Delete(ctx, s.cfg.AdminEmail); err != nil {
			log.Warn().Err(err).Str("func", "Verify").Msg("error deleting expired otp code")
		}
		log.Debug().Msg("otp verification failed: code expired")
		return false, nil
	}

	if stored.Code != code {
		log.Debug().Msg("otp verification failed: code mismatch")
		return false, nil
	}

	if err := s.codes.Delete(ctx, s.cfg.AdminEmail); err != nil {
		log.Err(err).Str("func", "Verify").Msg("error consuming otp code")
		return false, fmt.Errorf("error consuming otp code: %w", err)
	}

	log.Info().Msg("otp redeemed")
	return true, nil
}

// Invalidate discards any stored code without redeeming it.
func (s *otpService) Invalidate(ctx context.Context) error {
	return s.codes.Delete(ctx, s.cfg.AdminEmail)
}

// NormalizeOTPInput strips whitespace and non-digit separators from raw user
// input ("12 34-56" becomes "123456") and requires exactly six digits.
func NormalizeOTPInput(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	code := b.String()
	if len(code) != 6 {
		return "", ErrInvalidOTPFormat
	}

	return code, nil
}

// generateOTP draws a uniformly random six-digit code from a cryptographic
// source.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
