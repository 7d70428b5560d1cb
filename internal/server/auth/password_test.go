package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("secret1", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
	if CheckPassword("secret2", digest) {
		t.Fatalf("expected mismatching password to fail verification")
	}
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two digests of the same password must differ (random salt)")
	}
	if !CheckPassword("same-password", d1) || !CheckPassword("same-password", d2) {
		t.Fatalf("both digests must still verify against the password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("whatever", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
	if CheckPassword("whatever", "") {
		t.Fatalf("empty digest must not verify")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := HashPassword(string(long), bcrypt.MinCost); err == nil {
		t.Fatalf("expected error for password over the bcrypt 72-byte limit")
	}
}
