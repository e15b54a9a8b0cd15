package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput carries a new post. OwnerID comes from the verified token.
type CreatePostInput struct {
	OwnerID uuid.UUID
	Title   string
	Content string
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	RequesterID uuid.UUID
	PostID      uuid.UUID
	Title       *string
	Content     *string
}

// PostUsecase defines post operations. Mutations are restricted to the owner.
type PostUsecase interface {
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, input *UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, requesterID, postID uuid.UUID) error

	// GetPostShareQR renders a PNG QR code linking to the post.
	GetPostShareQR(ctx context.Context, postID uuid.UUID) ([]byte, error)
}
