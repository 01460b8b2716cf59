// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"motion/internal/delivery/http/router/handler"
	"motion/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	TrackingHandler     *handler.TrackingHandler
	LocationHandler     *handler.LocationHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	trackingHandler     *handler.TrackingHandler
	locationHandler     *handler.LocationHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		trackingHandler:     params.TrackingHandler,
		locationHandler:     params.LocationHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/previous-logins", r.authHandler.PreviousLogins)
	}

	// Tracking session routes
	trackingGroup := e.Group("/tracking")
	{
		trackingGroup.POST("/start", r.trackingHandler.Start)
		trackingGroup.POST("/stop", r.trackingHandler.Stop)
		trackingGroup.POST("/toggle", r.trackingHandler.Toggle)
		trackingGroup.GET("/session", r.trackingHandler.Session)
	}

	// Device-facing location intake and the path query
	locationGroup := e.Group("/locations")
	{
		locationGroup.POST("/fixes", r.locationHandler.IngestFix)
		locationGroup.PUT("/authorization", r.locationHandler.SetAuthorization)
		locationGroup.PUT("/subsystem", r.locationHandler.SetSubsystem)
		locationGroup.GET("/daily", r.locationHandler.DailyPath)
	}
}
