package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesAuthFields verifies that prefixed environment
// variables are mapped onto the nested Auth struct.
func TestParseEnv_PopulatesAuthFields(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "48h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenDuration)
}

// TestParseEnv_PopulatesSMTPFields verifies the SMTP_* variable mapping.
func TestParseEnv_PopulatesSMTPFields(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "sender@example.com")
	t.Setenv("SMTP_PASS", "app-password")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "sender@example.com", cfg.SMTP.User)
	assert.Equal(t, "app-password", cfg.SMTP.Password)
}

// TestParseEnv_InvalidDurationFails verifies that a malformed duration value
// is reported instead of being silently ignored.
func TestParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("AUTH_OTP_TTL", "ten minutes")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
