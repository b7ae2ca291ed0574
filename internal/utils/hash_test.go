package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword_VerifiesAgainstOriginal verifies the basic hash/verify
// round trip.
func TestHashPassword_VerifiesAgainstOriginal(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
}

// TestHashPassword_SaltedPerCall verifies that hashing the same password twice
// yields different digests (per-call random salt).
func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

// TestVerifyPassword_WrongPassword verifies that a wrong password does not
// match the digest.
func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right-password")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong-password", hash))
}

// TestVerifyPassword_GarbageHash verifies that a malformed digest never matches.
func TestVerifyPassword_GarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}
