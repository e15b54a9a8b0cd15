package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindByPost lists a post's comments with authors, oldest first.
	FindByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// DeleteByPost removes every comment of a post and reports how many went.
	DeleteByPost(ctx context.Context, postID uuid.UUID) (int64, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
