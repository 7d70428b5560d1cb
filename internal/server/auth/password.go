package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// The digest embeds the algorithm parameters and a fresh random salt, so
// hashing the same password twice yields different digests. It fails only
// when the entropy source is unusable or the password exceeds the bcrypt
// input limit of 72 bytes.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the bcrypt digest.
// The comparison is constant-time; a malformed digest simply returns false.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
