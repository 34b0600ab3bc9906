// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"msgboard/internal/delivery/http/middleware"
	"msgboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Register and login are the only routes that bypass the
	// token middleware; password update and deletion require a valid token.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PATCH("/updatePassword/:id", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
		authGroup.DELETE("/deleteUser/:id", r.authHandler.DeleteUser, r.authMiddleware.Authenticate)
	}

	// Message routes all require authentication.
	messageGroup := e.Group("/message")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("/create", r.messageHandler.Create)
		messageGroup.GET("/all", r.messageHandler.GetAll)
		messageGroup.GET("/:id", r.messageHandler.GetByID)
		messageGroup.PATCH("/:id", r.messageHandler.Update)
		messageGroup.DELETE("/:id", r.messageHandler.Delete)
	}
}
