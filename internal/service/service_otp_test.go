package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/store"
	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ┌────────────────────────────────────────────────────────────────────────┐
// │ Fakes                                                                  │
// └────────────────────────────────────────────────────────────────────────┘

// fakeOTPRepo is a map-backed in-memory stand-in for the SQLite repository.
type fakeOTPRepo struct {
	codes map[string]models.OTPCode
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{codes: make(map[string]models.OTPCode)}
}

func (f *fakeOTPRepo) Upsert(ctx context.Context, code models.OTPCode) error {
	f.codes[code.Email] = code
	return nil
}

func (f *fakeOTPRepo) Find(ctx context.Context, email string) (models.OTPCode, error) {
	code, ok := f.codes[email]
	if !ok {
		return models.OTPCode{}, store.ErrOTPNotFound
	}
	return code, nil
}

func (f *fakeOTPRepo) Delete(ctx context.Context, email string) error {
	delete(f.codes, email)
	return nil
}

func (f *fakeOTPRepo) PurgeExpired(ctx context.Context, now time.Time) error {
	for email, code := range f.codes {
		if !code.ExpiresAt.After(now) {
			delete(f.codes, email)
		}
	}
	return nil
}

type fakeSender struct {
	sendOTPEmailFunc func(ctx context.Context, email, code string) error
	sentTo           string
	sentCode         string
}

func (f *fakeSender) SendOTPEmail(ctx context.Context, email, code string) error {
	f.sentTo = email
	f.sentCode = code
	if f.sendOTPEmailFunc != nil {
		return f.sendOTPEmailFunc(ctx, email, code)
	}
	return nil
}

func newTestOTPService(t *testing.T) (*otpService, *fakeOTPRepo, *fakeSender) {
	t.Helper()
	repo := newFakeOTPRepo()
	sender := &fakeSender{}
	svc := NewOTPService(repo, sender, testAuthConfig(""), logger.Nop()).(*otpService)
	return svc, repo, sender
}

// ┌────────────────────────────────────────────────────────────────────────┐
// │ Issuance                                                               │
// └────────────────────────────────────────────────────────────────────────┘

func TestIssue_StoresAndDispatchesCode(t *testing.T) {
	svc, repo, sender := newTestOTPService(t)

	require.NoError(t, svc.Issue(context.Background()))

	stored, err := repo.Find(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, stored.Code, sender.sentCode, "dispatched code must match the stored one")
	assert.Equal(t, "admin@example.com", sender.sentTo)

	n, err := strconv.Atoi(stored.Code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)
}

func TestIssue_ReplacesPreviousCode(t *testing.T) {
	svc, repo, _ := newTestOTPService(t)

	require.NoError(t, svc.Issue(context.Background()))
	first, err := repo.Find(context.Background(), "admin@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Issue(context.Background()))
	second, err := repo.Find(context.Background(), "admin@example.com")
	require.NoError(t, err)

	// The first code must no longer redeem once a second one was issued.
	if first.Code != second.Code {
		ok, err := svc.Verify(context.Background(), first.Code)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	ok, err := svc.Verify(context.Background(), second.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIssue_NoAdminEmail(t *testing.T) {
	cfg := testAuthConfig("")
	cfg.AdminEmail = ""
	svc := NewOTPService(newFakeOTPRepo(), &fakeSender{}, cfg, logger.Nop())

	assert.ErrorIs(t, svc.Issue(context.Background()), ErrNoAdminEmail)
}

func TestIssue_SendFailurePropagates(t *testing.T) {
	svc, _, sender := newTestOTPService(t)
	sender.sendOTPEmailFunc = func(ctx context.Context, email, code string) error {
		return assert.AnError
	}

	assert.ErrorIs(t, svc.Issue(context.Background()), assert.AnError)
}

// ┌────────────────────────────────────────────────────────────────────────┐
// │ Redemption                                                             │
// └────────────────────────────────────────────────────────────────────────┘

func TestVerify_SingleUse(t *testing.T) {
	svc, _, sender := newTestOTPService(t)
	require.NoError(t, svc.Issue(context.Background()))

	ok, err := svc.Verify(context.Background(), sender.sentCode)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(context.Background(), sender.sentCode)
	require.NoError(t, err)
	assert.False(t, ok, "a redeemed code must not redeem twice")
}

func TestVerify_Mismatch(t *testing.T) {
	svc, _, sender := newTestOTPService(t)
	require.NoError(t, svc.Issue(context.Background()))

	wrong := "123456"
	if wrong == sender.sentCode {
		wrong = "654321"
	}

	ok, err := svc.Verify(context.Background(), wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	// A mismatch must not consume the stored code.
	ok, err = svc.Verify(context.Background(), sender.sentCode)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Expired(t *testing.T) {
	svc, repo, sender := newTestOTPService(t)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	require.NoError(t, svc.Issue(context.Background()))

	// One second past the TTL.
	svc.now = func() time.Time { return issued.Add(10*time.Minute + time.Second) }

	ok, err := svc.Verify(context.Background(), sender.sentCode)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Find(context.Background(), "admin@example.com")
	assert.ErrorIs(t, err, store.ErrOTPNotFound, "expired code must be deleted on sight")
}

func TestVerify_NoCodeStored(t *testing.T) {
	svc, _, _ := newTestOTPService(t)

	ok, err := svc.Verify(context.Background(), "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ┌────────────────────────────────────────────────────────────────────────┐
// │ Input normalization                                                    │
// └────────────────────────────────────────────────────────────────────────┘

func TestNormalizeOTPInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "123456", "123456", false},
		{"spaces and dash", "12 34-56", "123456", false},
		{"surrounding whitespace", "  123456\n", "123456", false},
		{"too short", "12345", "", true},
		{"too long", "1234567", "", true},
		{"empty", "", "", true},
		{"letters only", "abcdef", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOTPInput(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOTPFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
