package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput carries a new comment. AuthorID comes from the verified token.
type AddCommentInput struct {
	AuthorID uuid.UUID
	PostID   uuid.UUID
	Content  string
}

// CommentUsecase defines comment operations.
type CommentUsecase interface {
	AddComment(ctx context.Context, input *AddCommentInput) (*entity.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, requesterID, commentID uuid.UUID) error
}
