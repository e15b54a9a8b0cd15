package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry written by a single owner.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	OwnerID   uuid.UUID  `json:"owner_id"`        // Set once at creation from the authenticated user.
	Owner     *User      `json:"owner,omitempty"` // Populated on reads.
	Comments  []*Comment `json:"comments"`        // Oldest first.
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsOwnedBy reports whether userID is the post's owner.
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
