package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to new password hashes.
const passwordHashCost = 10

// HashPassword produces a bcrypt digest of the given plain-text password.
// Each call embeds a fresh random salt, so hashing the same password twice
// yields different digests.
//
// Returns a wrapped error if bcrypt rejects the input (e.g. the password
// exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plain-text password matches the given
// bcrypt digest. The comparison is performed by bcrypt itself and does not
// leak timing information about the digest contents.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
