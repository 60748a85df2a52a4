package handlers

import (
	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/middleware"
	"github.com/caterops/staffdesk/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Bearer-protected API routes
	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations. Events are registered under both the plural and the
// singular prefix: the dashboard's client retries the singular path when the
// plural one 404s, so both families are part of the served contract.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEventRoutes(api.Group("/events"), services.Event)
	registerEventRoutes(api.Group("/event"), services.Event)
	registerUserRoutes(api, services.User)
	registerStaffRoutes(api, services.Staff)
	registerCategoryRoutes(api, services.Category)
	registerBookingRoutes(api, services.Booking)
	registerReportingRoutes(api, services.Reporting)
}
