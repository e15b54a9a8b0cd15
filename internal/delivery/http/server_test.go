package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router"
	"blog/internal/delivery/http/router/handler"
	"blog/internal/infra/auth"
	"blog/internal/infra/persistence/memory"
	"blog/internal/infra/qrcode"
	"blog/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.HTTP.BasePath = "/api"
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.Auth.TokenSecret = "server-test-secret-with-enough-length"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.PasswordMinLength = 6
	cfg.Auth.CommentDeletePolicy = "author"
	cfg.CORS.AllowedOrigins = []string{"https://blog.example.com"}
	cfg.QRCode.Size = 64
	cfg.QRCode.ErrorCorrectionLevel = "L"
	cfg.QRCode.BaseURL = "https://blog.example.com"

	return cfg
}

// newTestEcho wires the full stack over the in-memory store.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	users := memory.NewUserRepository(store)
	posts := memory.NewPostRepository(store)
	comments := memory.NewCommentRepository(store)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC, err := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, err)

	postUC := impl.NewPostService(impl.PostServiceParams{
		TxManager: txManager,
		UserRepo:  users,
		PostRepo:  posts,
		QRService: qrcode.NewQRCodeService(cfg),
		Logger:    logger,
	})

	commentUC, err := impl.NewCommentService(impl.CommentServiceParams{
		UserRepo:    users,
		PostRepo:    posts,
		CommentRepo: comments,
		Config:      cfg,
		Logger:      logger,
	})
	require.NoError(t, err)

	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(authUC, logger),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(users, logger),
			PostUC: postUC,
		}),
		PostHandler:    handler.NewPostHandler(handler.PostHandlerParams{PostUC: postUC, Logger: logger}),
		CommentHandler: handler.NewCommentHandler(commentUC),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	return newEcho(cfg, logger, middleware.NewErrorMiddleware(logger), r)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type client struct {
	t *testing.T
	e *echo.Echo
}

func (c client) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(c.t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type postData struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	OwnerID  string `json:"owner_id"`
	Comments []struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	} `json:"comments"`
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))

	return v
}

func TestServer_BlogScenario(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	creds := map[string]string{"email": "alice@example.com", "password": "secret123"}

	rec, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	alice := decodeData[authData](t, env)
	assert.NotEmpty(t, alice.Token)
	assert.Equal(t, "alice@example.com", alice.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, env = c.do(stdhttp.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, stdhttp.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	rec, env = c.do(stdhttp.MethodPost, "/api/auth/login", "", map[string]string{"email": "alice@example.com", "password": "wrong-pass"})
	require.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	rec, env = c.do(stdhttp.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	aliceToken := decodeData[authData](t, env).Token

	rec, env = c.do(stdhttp.MethodPost, "/api/posts", aliceToken, map[string]string{"title": "Hello", "content": "First post"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	post := decodeData[postData](t, env)
	assert.Equal(t, alice.User.ID, post.OwnerID)
	assert.Empty(t, post.Comments)

	rec, env = c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "bob@example.com", "password": "secret456"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	bobToken := decodeData[authData](t, env).Token

	rec, env = c.do(stdhttp.MethodPatch, "/api/posts/"+post.ID, bobToken, map[string]string{"title": "Hijacked"})
	require.Equal(t, stdhttp.StatusForbidden, rec.Code)
	assert.Equal(t, "POST_OWNERSHIP_VIOLATION", env.Error.Code)

	rec, env = c.do(stdhttp.MethodPatch, "/api/posts/"+post.ID, aliceToken, map[string]string{"title": "Hello again"})
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	updated := decodeData[postData](t, env)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "First post", updated.Content)

	rec, _ = c.do(stdhttp.MethodPost, "/api/posts/"+post.ID+"/comments", bobToken, map[string]string{"content": "Nice"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	rec, env = c.do(stdhttp.MethodGet, "/api/posts/"+post.ID, "", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	fetched := decodeData[postData](t, env)
	require.Len(t, fetched.Comments, 1)
	assert.Equal(t, "Nice", fetched.Comments[0].Content)

	rec, _ = c.do(stdhttp.MethodDelete, "/api/posts/"+post.ID, bobToken, nil)
	require.Equal(t, stdhttp.StatusForbidden, rec.Code)

	rec, _ = c.do(stdhttp.MethodDelete, "/api/posts/"+post.ID, aliceToken, nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	rec, env = c.do(stdhttp.MethodGet, "/api/posts/"+post.ID+"/comments", "", nil)
	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "POST_NOT_FOUND", env.Error.Code)
}

func TestServer_MyPostsUsesTokenIdentity(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	_, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@example.com", "password": "secret123"})
	aToken := decodeData[authData](t, env).Token
	_, env = c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "b@example.com", "password": "secret123"})
	b := decodeData[authData](t, env)

	c.do(stdhttp.MethodPost, "/api/posts", aToken, map[string]string{"title": "mine", "content": "x"})
	c.do(stdhttp.MethodPost, "/api/posts", b.Token, map[string]string{"title": "theirs", "content": "y"})

	rec, env := c.do(stdhttp.MethodGet, "/api/posts/my-posts?userId="+b.User.ID, aToken, nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	mine := decodeData[[]postData](t, env)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)

	rec, env = c.do(stdhttp.MethodGet, "/api/users/"+b.User.ID+"/posts", "", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	theirs := decodeData[[]postData](t, env)
	require.Len(t, theirs, 1)
	assert.Equal(t, "theirs", theirs[0].Title)

	rec, _ = c.do(stdhttp.MethodGet, "/api/posts/my-posts", "", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestServer_RequestErrors(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	_, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@example.com", "password": "secret123"})
	token := decodeData[authData](t, env).Token

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     any
		wantCode int
		wantErr  string
	}{
		{name: "malformed id", method: stdhttp.MethodGet, path: "/api/posts/not-a-uuid", wantCode: stdhttp.StatusBadRequest, wantErr: "INVALID_ID"},
		{name: "unknown post", method: stdhttp.MethodGet, path: "/api/posts/6f1d7c52-7a57-4d5e-9a0f-3c1b8f0e9a11", wantCode: stdhttp.StatusNotFound, wantErr: "POST_NOT_FOUND"},
		{name: "missing token", method: stdhttp.MethodPost, path: "/api/posts", body: map[string]string{"title": "t", "content": "c"}, wantCode: stdhttp.StatusUnauthorized, wantErr: "TOKEN_MISSING"},
		{name: "bad token", method: stdhttp.MethodPost, path: "/api/posts", token: "not.a.jwt", body: map[string]string{"title": "t", "content": "c"}, wantCode: stdhttp.StatusUnauthorized, wantErr: "TOKEN_INVALID"},
		{name: "blank title", method: stdhttp.MethodPost, path: "/api/posts", token: token, body: map[string]string{"title": "  ", "content": "c"}, wantCode: stdhttp.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "malformed json", method: stdhttp.MethodPost, path: "/api/posts", token: token, body: `{"title":`, wantCode: stdhttp.StatusBadRequest, wantErr: "INVALID_INPUT"},
		{name: "invalid email", method: stdhttp.MethodPost, path: "/api/auth/register", body: map[string]string{"email": "nope", "password": "secret123"}, wantCode: stdhttp.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "unknown route", method: stdhttp.MethodGet, path: "/api/nothing", wantCode: stdhttp.StatusNotFound, wantErr: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.t = t
			rec, env := c.do(tt.method, tt.path, tt.token, tt.body)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestServer_BodyLimit(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	rec, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "a@example.com",
		"password": string(bytes.Repeat([]byte("x"), 2048)),
	})

	assert.Equal(t, stdhttp.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_PostShareQR(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	_, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@example.com", "password": "secret123"})
	token := decodeData[authData](t, env).Token
	_, env = c.do(stdhttp.MethodPost, "/api/posts", token, map[string]string{"title": "qr", "content": "x"})
	post := decodeData[postData](t, env)

	rec, _ := c.do(stdhttp.MethodGet, "/api/posts/"+post.ID+"/qrcode", "", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestServer_CORS(t *testing.T) {
	e := newTestEcho(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodOptions, "/api/posts", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, stdhttp.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	allowed := preflight("https://blog.example.com")
	assert.Equal(t, "https://blog.example.com", allowed.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", allowed.Header().Get(echo.HeaderAccessControlAllowCredentials))

	denied := preflight("https://evil.example.com")
	assert.Empty(t, denied.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, denied.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_RequestIDHeader(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"trace-123"}}`, rec.Body.String())
}

func TestCORSConfig_Development(t *testing.T) {
	cfg := testConfig()
	cfg.Env.Env = config.EnvDevelopment

	corsCfg := corsConfig(cfg)
	assert.Equal(t, []string{"*"}, corsCfg.AllowOrigins)
	assert.Nil(t, corsCfg.AllowOriginFunc)
	// browsers reject credentials with a wildcard origin
	assert.False(t, corsCfg.AllowCredentials)
}

func TestServer_RegisterLoginCreatePatchScenario(t *testing.T) {
	c := client{t: t, e: newTestEcho(t)}

	rec, env := c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decodeData[authData](t, env).Token)

	rec, _ = c.do(stdhttp.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrong"})
	require.Equal(t, stdhttp.StatusUnauthorized, rec.Code)

	rec, env = c.do(stdhttp.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	owner := decodeData[authData](t, env)
	require.NotEmpty(t, owner.Token)

	rec, env = c.do(stdhttp.MethodPost, "/api/posts", owner.Token, map[string]string{"title": "T", "content": "C"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	post := decodeData[postData](t, env)
	assert.Equal(t, owner.User.ID, post.OwnerID)

	_, env = c.do(stdhttp.MethodPost, "/api/auth/register", "", map[string]string{"email": "b@x.com", "password": "secret2"})
	other := decodeData[authData](t, env).Token

	rec, _ = c.do(stdhttp.MethodPatch, "/api/posts/"+post.ID, other, map[string]string{"title": "X", "content": "Y"})
	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
}
