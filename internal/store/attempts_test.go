package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/portfolio-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAttemptStore_GetAbsent verifies that an unknown IP has no record.
func TestAttemptStore_GetAbsent(t *testing.T) {
	s := NewAttemptStore()

	_, ok := s.Get("198.51.100.7")
	assert.False(t, ok)
}

// TestAttemptStore_SetThenGet verifies the basic store/retrieve round trip.
func TestAttemptStore_SetThenGet(t *testing.T) {
	s := NewAttemptStore()
	now := time.Now()

	s.Set("198.51.100.7", models.LoginAttempt{Count: 3, LastAttempt: now})

	attempt, ok := s.Get("198.51.100.7")
	require.True(t, ok)
	assert.Equal(t, 3, attempt.Count)
	assert.Equal(t, now, attempt.LastAttempt)
}

// TestAttemptStore_SetOverwrites verifies that Set replaces the prior record.
func TestAttemptStore_SetOverwrites(t *testing.T) {
	s := NewAttemptStore()

	s.Set("ip", models.LoginAttempt{Count: 1})
	s.Set("ip", models.LoginAttempt{Count: 4})

	attempt, ok := s.Get("ip")
	require.True(t, ok)
	assert.Equal(t, 4, attempt.Count)
}

// TestAttemptStore_DeleteIsIdempotent verifies that deleting twice leaves the
// state identical to deleting once: no record for the IP.
func TestAttemptStore_DeleteIsIdempotent(t *testing.T) {
	s := NewAttemptStore()
	s.Set("ip", models.LoginAttempt{Count: 5})

	s.Delete("ip")
	s.Delete("ip")

	_, ok := s.Get("ip")
	assert.False(t, ok)
}

// TestAttemptStore_IsolatesIPs verifies that records for distinct IPs do not
// interfere.
func TestAttemptStore_IsolatesIPs(t *testing.T) {
	s := NewAttemptStore()

	s.Set("first", models.LoginAttempt{Count: 1})
	s.Set("second", models.LoginAttempt{Count: 2})
	s.Delete("first")

	_, ok := s.Get("first")
	assert.False(t, ok)

	attempt, ok := s.Get("second")
	require.True(t, ok)
	assert.Equal(t, 2, attempt.Count)
}
