// Package auth implements the credential primitives of the server:
// signed expiring session tokens and one-way password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/battleapi/internal/common"
)

// GenerateToken issues a signed JWT whose subject is the given username and
// whose expiry is now+ttl. The algorithm identifier must name an HMAC
// signing method (e.g. "HS256").
func GenerateToken(subject string, secretKey []byte, algorithm string, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", algorithm)
	}

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken parses and verifies a token and returns the embedded
// subject. Failures map onto three sentinel errors:
//
//   - common.ErrTokenMalformed: the string is not a well-formed token
//     (also covers tokens signed with a non-allowed algorithm);
//   - common.ErrTokenBadSignature: the signature does not match secretKey;
//   - common.ErrTokenExpired: signature fine, expiry in the past.
//
// Callers treat all three as unauthenticated; the distinction is kept for
// diagnostics only.
func SubjectFromToken(tokenString string, secretKey []byte, algorithm string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{algorithm}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenBadSignature
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.Subject, nil
}
