// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FixtureHandler   *handler.FixtureHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ExportHandler    *handler.ExportHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	fixtureHandler   *handler.FixtureHandler
	analyticsHandler *handler.AnalyticsHandler
	exportHandler    *handler.ExportHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		fixtureHandler:   params.FixtureHandler,
		analyticsHandler: params.AnalyticsHandler,
		exportHandler:    params.ExportHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Fixture management requires the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/fixtures/runs", r.fixtureHandler.GenerateRun)
		adminGroup.GET("/fixtures/runs/latest", r.fixtureHandler.GetLatestRun)
		adminGroup.GET("/fixtures/runs/current", r.fixtureHandler.GetCurrentRun)
		adminGroup.POST("/fixtures/reset", r.fixtureHandler.ResetData)
		adminGroup.POST("/exports", r.exportHandler.ExportAll)
	}

	analyticsGroup := e.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate)
	{
		analyticsGroup.GET("/global-stats", r.analyticsHandler.GetGlobalStats)
		analyticsGroup.GET("/monthly-stats", r.analyticsHandler.GetMonthlyStats)
		analyticsGroup.GET("/category-stats", r.analyticsHandler.GetCategoryStats)
		analyticsGroup.GET("/user-stats", r.analyticsHandler.GetUserStats)
	}

	exportGroup := e.Group("/export")
	exportGroup.Use(r.authMiddleware.Authenticate)
	{
		exportGroup.GET("/:kind", r.exportHandler.DownloadKind)
	}
}
