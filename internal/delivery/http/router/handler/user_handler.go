package handler

import (
	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	PostUC usecase.PostUsecase
}

// UserHandler serves account lookups.
type UserHandler struct {
	userUC usecase.UserUsecase
	postUC usecase.PostUsecase
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		postUC: params.PostUC,
	}
}

// GetProfile returns the authenticated user's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// ListUserPosts returns every post owned by the user in the path.
func (h *UserHandler) ListUserPosts(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	posts, err := h.postUC.ListPostsByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, posts)
}
