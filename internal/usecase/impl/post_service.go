package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	PostRepo  repository.PostRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		postRepo:  params.PostRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := requireText("content", input.Content); err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to resolve post owner")
	}

	post := &entity.Post{
		Title:   input.Title,
		Content: input.Content,
		OwnerID: owner.ID,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("ownerID", owner.ID), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create post")
	}
	post.Owner = owner

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("ownerID", owner.ID))

	return post, nil
}

func (srv *postService) GetPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get post")
	}

	return post, nil
}

func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *postService) ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, translateRepoError(err, "failed to resolve post owner")
	}

	posts, err := srv.postRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list posts by owner")
	}

	return posts, nil
}

// UpdatePost overwrites only the provided fields. Owner and comments never change.
func (srv *postService) UpdatePost(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Content != nil {
		if err := requireText("content", *input.Content); err != nil {
			return nil, err
		}
	}

	post, err := srv.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get post")
	}
	if !post.IsOwnedBy(input.RequesterID) {
		srv.log(ctx).Warn("Post update denied", slog.Any("postID", post.ID), slog.Any("requesterID", input.RequesterID))

		return nil, domainerrors.ErrPostOwnershipViolation
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, translateRepoError(err, "failed to update post")
	}

	return post, nil
}

// DeletePost removes the post and its comments atomically.
func (srv *postService) DeletePost(ctx context.Context, requesterID, postID uuid.UUID) error {
	var removedComments int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			return translateRepoError(err, "failed to get post")
		}
		if !post.IsOwnedBy(requesterID) {
			return domainerrors.ErrPostOwnershipViolation
		}

		if removedComments, err = commentRepo.DeleteByPost(ctx, postID); err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}

		return translateRepoError(postRepo.Delete(ctx, postID), "failed to delete post")
	})
	if err != nil {
		srv.log(ctx).Warn("Post deletion failed", slog.Any("postID", postID), slog.Any("requesterID", requesterID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID), slog.Int64("comments", removedComments))

	return nil
}

func (srv *postService) GetPostShareQR(ctx context.Context, postID uuid.UUID) ([]byte, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		return nil, translateRepoError(err, "failed to get post")
	}

	png, err := srv.qrService.GeneratePostShareQR(postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate post share QR code")
	}

	return png, nil
}
