package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"
	"blog/internal/infra/persistence/memory"
	"blog/internal/infra/qrcode"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.TokenSecret = "test_token_secret_key_very_long_for_testing"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.PasswordMinLength = 6
	cfg.Auth.CommentDeletePolicy = "author"
	cfg.QRCode.Size = 64
	cfg.QRCode.ErrorCorrectionLevel = "L"
	cfg.QRCode.BaseURL = "https://blog.example.com"

	return cfg
}

// fixtures wires every service over one in-memory store.
type fixtures struct {
	cfg       *config.Config
	store     *memory.Store
	txManager repository.TransactionManager
	users     repository.UserRepository
	posts     repository.PostRepository
	comments  repository.CommentRepository
	tokens    service.TokenService

	auth    usecase.AuthUsecase
	user    usecase.UserUsecase
	post    usecase.PostUsecase
	comment usecase.CommentUsecase

	commentWithPolicy func(policy string) usecase.CommentUsecase
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	return newFixturesWithTx(t, nil)
}

// newFixturesWithTx lets a test decorate the transaction manager.
func newFixturesWithTx(t *testing.T, wrap func(repository.TransactionManager) repository.TransactionManager) *fixtures {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := memory.NewStore()

	f := &fixtures{
		cfg:       cfg,
		store:     store,
		txManager: memory.NewTransactionManager(store),
		users:     memory.NewUserRepository(store),
		posts:     memory.NewPostRepository(store),
		comments:  memory.NewCommentRepository(store),
	}
	if wrap != nil {
		f.txManager = wrap(f.txManager)
	}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	f.tokens = tokens

	f.auth, err = NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, err)

	f.user = NewUserService(f.users, logger)

	f.post = NewPostService(PostServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.users,
		PostRepo:  f.posts,
		QRService: qrcode.NewQRCodeService(cfg),
		Logger:    logger,
	})

	f.commentWithPolicy = func(policy string) usecase.CommentUsecase {
		c := *cfg
		c.Auth.CommentDeletePolicy = policy
		svc, err := NewCommentService(CommentServiceParams{
			UserRepo:    f.users,
			PostRepo:    f.posts,
			CommentRepo: f.comments,
			Config:      &c,
			Logger:      logger,
		})
		require.NoError(t, err)

		return svc
	}
	f.comment = f.commentWithPolicy("author")

	return f
}

func (f *fixtures) register(t *testing.T, email string) uuid.UUID {
	t.Helper()

	out, err := f.auth.Register(context.Background(), &usecase.RegisterInput{Email: email, Password: "secret123"})
	require.NoError(t, err)

	return out.User.ID
}

func (f *fixtures) createPost(t *testing.T, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	post, err := f.post.CreatePost(context.Background(), &usecase.CreatePostInput{
		OwnerID: ownerID,
		Title:   title,
		Content: "content of " + title,
	})
	require.NoError(t, err)

	return post.ID
}

func (f *fixtures) addComment(t *testing.T, authorID, postID uuid.UUID, content string) uuid.UUID {
	t.Helper()

	comment, err := f.comment.AddComment(context.Background(), &usecase.AddCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	})
	require.NoError(t, err)

	return comment.ID
}

func ptr[T any](v T) *T { return &v }
