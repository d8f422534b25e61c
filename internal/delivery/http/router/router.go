// Package router contains routing for the ops server.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"textura/internal/delivery/http/router/handler"
	"textura/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	FormHandler *handler.FormHandler
	Registry    *prometheus.Registry
}

type router struct {
	authHandler *handler.AuthHandler
	formHandler *handler.FormHandler
	registry    *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		formHandler: params.FormHandler,
		registry:    params.Registry,
	}
}

// RegisterRoutes sets up all routes of the ops server.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/state", r.authHandler.GetState)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.PUT("/email", r.authHandler.UpdateEmail)
		authGroup.DELETE("/account", r.authHandler.DeleteAccount)
		authGroup.POST("/password-reset", r.authHandler.SendPasswordReset)
	}

	e.POST("/forms/validate", r.formHandler.Validate)
}
