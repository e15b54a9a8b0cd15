package impl

import (
	"context"
	"testing"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/infra/persistence/memory"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	f := newFixtures(t)
	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	postID := f.createPost(t, alice, "post")
	ctx := context.Background()

	comment, err := f.comment.AddComment(ctx, &usecase.AddCommentInput{AuthorID: bob, PostID: postID, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, bob, comment.AuthorID)
	require.NotNil(t, comment.Author)
	assert.Equal(t, "bob@example.com", comment.Author.Email)

	for _, blank := range []string{"", "   ", "\n\t"} {
		_, err := f.comment.AddComment(ctx, &usecase.AddCommentInput{AuthorID: bob, PostID: postID, Content: blank})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "%q", blank)
	}

	_, err = f.comment.AddComment(ctx, &usecase.AddCommentInput{AuthorID: bob, PostID: uuid.New(), Content: "hi"})
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_ListComments_OldestFirst(t *testing.T) {
	f := newFixtures(t)
	alice := f.register(t, "alice@example.com")
	postID := f.createPost(t, alice, "post")
	for _, c := range []string{"a", "b", "c"} {
		f.addComment(t, alice, postID, c)
	}

	list, err := f.comment.ListComments(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.Before(list[i-1].CreatedAt))
	}

	_, err = f.comment.ListComments(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_DeleteComment_AuthorPolicy(t *testing.T) {
	f := newFixtures(t)
	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	postID := f.createPost(t, alice, "post")
	commentID := f.addComment(t, bob, postID, "bob's")
	ctx := context.Background()

	// Even the post owner may not delete someone else's comment.
	err := f.comment.DeleteComment(ctx, alice, commentID)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentOwnershipViolation))

	require.NoError(t, f.comment.DeleteComment(ctx, bob, commentID))

	err = f.comment.DeleteComment(ctx, bob, commentID)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_DeleteComment_AnyPolicy(t *testing.T) {
	f := newFixtures(t)
	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")
	postID := f.createPost(t, alice, "post")
	commentID := f.addComment(t, bob, postID, "bob's")

	permissive := f.commentWithPolicy("any")
	require.NoError(t, permissive.DeleteComment(context.Background(), alice, commentID))
}

func TestNewCommentService_RejectsUnknownPolicy(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.CommentDeletePolicy = "moderators"
	store := memory.NewStore()

	_, err := NewCommentService(CommentServiceParams{
		UserRepo:    memory.NewUserRepository(store),
		PostRepo:    memory.NewPostRepository(store),
		CommentRepo: memory.NewCommentRepository(store),
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	assert.Error(t, err)
}
