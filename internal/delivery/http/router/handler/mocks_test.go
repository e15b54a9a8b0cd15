package handler

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AuthOutput)

	return out, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AuthOutput)

	return out, args.Error(1)
}

type mockUserUsecase struct{ mock.Mock }

func (m *mockUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

type mockPostUsecase struct{ mock.Mock }

func (m *mockPostUsecase) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, input)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *mockPostUsecase) GetPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *mockPostUsecase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *mockPostUsecase) ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	args := m.Called(ctx, ownerID)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *mockPostUsecase) UpdatePost(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, input)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *mockPostUsecase) DeletePost(ctx context.Context, requesterID, postID uuid.UUID) error {
	return m.Called(ctx, requesterID, postID).Error(0)
}

func (m *mockPostUsecase) GetPostShareQR(ctx context.Context, postID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, postID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

type mockCommentUsecase struct{ mock.Mock }

func (m *mockCommentUsecase) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	args := m.Called(ctx, input)
	comment, _ := args.Get(0).(*entity.Comment)

	return comment, args.Error(1)
}

func (m *mockCommentUsecase) ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]*entity.Comment)

	return comments, args.Error(1)
}

func (m *mockCommentUsecase) DeleteComment(ctx context.Context, requesterID, commentID uuid.UUID) error {
	return m.Called(ctx, requesterID, commentID).Error(0)
}
