// Package router wires the HTTP handlers to their routes.
package router

import (
	"sensorhub/internal/delivery/http/middleware"
	"sensorhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReadingHandler *handler.ReadingHandler
	QueryHandler   *handler.QueryHandler
	ExportHandler  *handler.ExportHandler
	StreamHandler  *handler.StreamHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	readingHandler *handler.ReadingHandler
	queryHandler   *handler.QueryHandler
	exportHandler  *handler.ExportHandler
	streamHandler  *handler.StreamHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		readingHandler: params.ReadingHandler,
		queryHandler:   params.QueryHandler,
		exportHandler:  params.ExportHandler,
		streamHandler:  params.StreamHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	{
		// Devices authenticate per write through X-Device-ID / X-Device-Token.
		apiV1.POST("/readings", r.readingHandler.Ingest)

		apiV1.GET("/devices", r.queryHandler.ListDevices)
		apiV1.GET("/devices/:id/latest", r.queryHandler.Latest)
		apiV1.GET("/devices/:id/readings", r.queryHandler.Range)
		apiV1.GET("/devices/:id/csv", r.exportHandler.ExportCSV)
	}

	e.GET("/ws/devices/:id", r.streamHandler.Stream)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(middleware.RoleAdmin))
	{
		adminGroup.POST("/devices", r.adminHandler.ProvisionDevice)
		adminGroup.GET("/devices", r.adminHandler.ListDevices)
	}
}
