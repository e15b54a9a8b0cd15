package impl

import (
	"context"
	"log/slog"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	deletePolicy entity.CommentDeletePolicy
	logger       *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) (usecase.CommentUsecase, error) {
	policy, err := entity.ParseCommentDeletePolicy(params.Config.Auth.CommentDeletePolicy)
	if err != nil {
		return nil, err
	}

	return &commentService{
		userRepo:     params.UserRepo,
		postRepo:     params.PostRepo,
		commentRepo:  params.CommentRepo,
		deletePolicy: policy,
		logger:       params.Logger,
	}, nil
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commentService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if err := requireText("content", input.Content); err != nil {
		return nil, err
	}

	if _, err := srv.postRepo.FindByID(ctx, input.PostID); err != nil {
		return nil, translateRepoError(err, "failed to get post")
	}

	author, err := srv.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, translateRepoError(err, "failed to resolve comment author")
	}

	comment := &entity.Comment{
		Content:  input.Content,
		PostID:   input.PostID,
		AuthorID: author.ID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, translateRepoError(err, "failed to create comment")
	}
	comment.Author = author

	srv.log(ctx).Debug("Comment added", slog.Any("commentID", comment.ID), slog.Any("postID", comment.PostID))

	return comment, nil
}

func (srv *commentService) ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		return nil, translateRepoError(err, "failed to get post")
	}

	comments, err := srv.commentRepo.FindByPost(ctx, postID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *commentService) DeleteComment(ctx context.Context, requesterID, commentID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return translateRepoError(err, "failed to get comment")
	}

	if !srv.deletePolicy.Allows(comment, requesterID) {
		srv.log(ctx).Warn("Comment deletion denied", slog.Any("commentID", commentID), slog.Any("requesterID", requesterID))

		return domainerrors.ErrCommentOwnershipViolation
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return translateRepoError(err, "failed to delete comment")
	}

	return nil
}
