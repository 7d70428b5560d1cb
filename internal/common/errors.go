// Package common contains shared sentinel errors and small helpers used
// across the Battle API server. Callers should match these values with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Auth errors. ErrUnauthenticated covers missing, invalid and expired
	// credentials alike; ErrForbidden means the identity is valid but the
	// account is administratively disabled.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Token diagnostics. All of them surface to callers as
	// ErrUnauthenticated; the distinction exists for logs only.
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
)
