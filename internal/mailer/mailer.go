// Package mailer implements outbound email dispatch for the OTP flow.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/portfolio-admin/internal/config"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
)

// smtpMailer is the SMTP-backed implementation of [Sender].
type smtpMailer struct {
	cfg    config.SMTP
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Sender] that delivers mail through the SMTP
// server described by cfg. Construction never dials; connectivity problems
// surface on the first send.
func NewSMTPMailer(cfg config.SMTP, logger *logger.Logger) Sender {
	logger.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp mailer")
	return &smtpMailer{
		cfg:    cfg,
		logger: logger,
	}
}

// SendOTPEmail delivers the code to the given address.
//
// Returns one of the package sentinel errors so the HTTP layer can tell the
// operator whether the problem is missing configuration, bad credentials, or
// an unreachable server.
func (m *smtpMailer) SendOTPEmail(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if m.cfg.Password == "" {
		log.Error().Msg("otp email requested but smtp password is not configured")
		return ErrNotConfigured
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		log.Err(err).Msg("error creating smtp client")
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Portfolio Admin", m.cfg.From); err != nil {
		return fmt.Errorf("%w: invalid sender address: %w", ErrSendFailed, err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("%w: invalid recipient address: %w", ErrSendFailed, err)
	}
	msg.Subject("Your admin verification code")
	msg.SetBodyString(mail.TypeTextHTML, otpBody(code))

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("host", m.cfg.Host).Msg("error sending otp email")
		return categorizeSendError(err)
	}

	log.Info().Str("to", email).Msg("otp email dispatched")
	return nil
}

// categorizeSendError maps a raw SMTP failure onto one of the package
// sentinels. SMTP servers report authentication failures with a 535 reply;
// unreachable servers fail at dial time.
func categorizeSendError(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "auth"):
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	case strings.Contains(msg, "dial") || strings.Contains(msg, "connection refused") || strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
}

func otpBody(code string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #0A0F2C;">Verification code</h2>
		<p>Use the following code to confirm your request in the admin panel:</p>
		<div style="background-color: #6A5AE0; color: white; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
			<h1 style="margin: 0; font-size: 32px; letter-spacing: 4px;">%s</h1>
		</div>
		<p style="color: #666; font-size: 14px;">This code will expire in 10 minutes.</p>
		<p style="color: #666; font-size: 14px;">If you did not request it, please ignore this email.</p>
	</div>`, code)
}
