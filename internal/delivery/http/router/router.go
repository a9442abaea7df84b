// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	OAuthHandler      *handler.OAuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	oauthHandler      *handler.OAuthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		oauthHandler:      params.OAuthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route sees the session if the cookie is present.
	e.Use(r.sessionMiddleware.LoadSession)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.LogIn)
		authGroup.POST("/logout", r.authHandler.LogOut)

		// The GET issues the limiter cookie; the POST consumes a code and is
		// counted against it.
		verifyGroup := authGroup.Group("/verify-email")
		verifyGroup.GET("", r.authHandler.VerifyEmailPreflight)
		verifyGroup.POST("", r.authHandler.VerifyEmail, r.sessionMiddleware.RequireAuth)
		verifyGroup.POST("/resend", r.authHandler.ResendVerificationCode, r.sessionMiddleware.RequireAuth)
	}

	// OAuth routes
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/:provider", r.oauthHandler.Begin)
		oauthGroup.GET("/:provider/callback", r.oauthHandler.Callback)
	}

	// Routes that require a valid session
	e.GET("/me", r.authHandler.Me, r.sessionMiddleware.RequireAuth)
}
