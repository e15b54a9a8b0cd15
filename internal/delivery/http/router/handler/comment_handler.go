package handler

import (
	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler serves comments under a post.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

func NewCommentHandler(commentUC usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

// AddCommentRequest represents the request body for commenting on a post
type AddCommentRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

// AddComment handles POST /posts/:id/comments.
func (h *CommentHandler) AddComment(c echo.Context) error {
	authorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AddCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), &usecase.AddCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, comment)
}

// ListComments handles GET /posts/:id/comments.
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, comments)
}

// DeleteComment handles DELETE /comments/:id.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), requesterID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, deletedResponse{ID: commentID, Deleted: true})
}
