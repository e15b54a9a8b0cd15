// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes mounts every route under g.
func (r *router) RegisterRoutes(g *echo.Group) {
	authenticate := r.authMiddleware.Authenticate

	g.GET("/health", handler.HealthCheck)

	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	usersGroup := g.Group("/users")
	{
		usersGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		usersGroup.GET("/:id/posts", r.userHandler.ListUserPosts)
	}

	postsGroup := g.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts)
		postsGroup.POST("", r.postHandler.CreatePost, authenticate)
		// static segment takes priority over :id in echo's router
		postsGroup.GET("/my-posts", r.postHandler.ListMyPosts, authenticate)
		postsGroup.GET("/:id", r.postHandler.GetPost)
		postsGroup.PATCH("/:id", r.postHandler.UpdatePost, authenticate)
		postsGroup.DELETE("/:id", r.postHandler.DeletePost, authenticate)
		postsGroup.GET("/:id/qrcode", r.postHandler.GetPostShareQR)

		postsGroup.GET("/:id/comments", r.commentHandler.ListComments)
		postsGroup.POST("/:id/comments", r.commentHandler.AddComment, authenticate)
	}

	commentsGroup := g.Group("/comments")
	{
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment, authenticate)
	}
}
