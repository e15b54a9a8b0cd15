package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// PostRepository persists posts.
type PostRepository interface {
	// Create stores a new post. ID and timestamps are assigned by the store.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID loads a post with its owner and comments (oldest first).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll lists every post with its owner, newest first.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// FindByOwner lists posts owned by ownerID, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error)

	// Update writes title and content and refreshes UpdatedAt.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post. Returns ErrPostNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
