// Package entity holds the blog's domain objects. They carry JSON tags
// because handlers render them directly.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can author posts and comments.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"` // normalized: trimmed and lower-cased

	// PasswordHash is the bcrypt digest; it never leaves the process.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
