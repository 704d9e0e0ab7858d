// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"herdwatch/internal/delivery/http/middleware"
	"herdwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler        *handler.AlertHandler
	CheckinHandler      *handler.CheckinHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler        *handler.AlertHandler
	checkinHandler      *handler.CheckinHandler
	notificationHandler *handler.NotificationHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:        params.AlertHandler,
		checkinHandler:      params.CheckinHandler,
		notificationHandler: params.NotificationHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Farm routes, scoped to the farm named in the access token
	farmGroup := e.Group("/farm")
	farmGroup.Use(r.authMiddleware.Authenticate)
	{
		farmGroup.POST("/alerts/trigger", r.alertHandler.TriggerAlert)
		farmGroup.GET("/alerts/schedule", r.alertHandler.GetSchedule)
		farmGroup.PUT("/alerts/schedule", r.alertHandler.UpdateSchedule)

		farmGroup.POST("/checkins", r.checkinHandler.RecordCheckin)
		farmGroup.DELETE("/checkins/:animalID", r.checkinHandler.RevertCheckin)

		farmGroup.GET("/notifications", r.notificationHandler.ListNotifications)
		farmGroup.POST("/notifications/:id/read", r.notificationHandler.MarkRead)

		farmGroup.GET("/dashboard", r.dashboardHandler.GetOverview)
	}
}
