// Package models defines the server-side domain entities.
package models

import "time"

// User is an authenticated principal. Email and UserName are globally
// unique (enforced by database constraints) and immutable after creation.
// PasswordHash is an opaque bcrypt digest, safe to store; the plaintext
// password is never persisted. An inactive user keeps a valid identity but
// is denied access on every resolution.
type User struct {
	ID           string
	Email        string
	UserName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
