package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves post CRUD and share codes.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=255"`
	Content string `json:"content" validate:"required,notblank"`
}

// UpdatePostRequest is a partial update; omitted fields stay as they are.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,notblank"`
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), &usecase.CreatePostInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, post)
}

// ListPosts handles GET /posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUC.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, posts)
}

// ListMyPosts handles GET /posts/my-posts. The owner is always the token's subject.
func (h *PostHandler) ListMyPosts(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	posts, err := h.postUC.ListPostsByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, posts)
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postUC.GetPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, post)
}

// UpdatePost handles PATCH /posts/:id.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postUC.UpdatePost(c.Request().Context(), &usecase.UpdatePostInput{
		RequesterID: requesterID,
		PostID:      postID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, post)
}

// DeletePost handles DELETE /posts/:id.
func (h *PostHandler) DeletePost(c echo.Context) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postUC.DeletePost(c.Request().Context(), requesterID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, deletedResponse{ID: postID, Deleted: true})
}

// GetPostShareQR handles GET /posts/:id/qrcode and writes a PNG.
func (h *PostHandler) GetPostShareQR(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.postUC.GetPostShareQR(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
