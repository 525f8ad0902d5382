package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/red326/media-client-management/internal/handler"
	"github.com/red326/media-client-management/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Creator *handler.CreatorHandler
	Video   *handler.VideoHandler
	Stats   *handler.StatsHandler
	Export  *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks and metrics (outside the rate-limited API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	browseLimiter := middleware.NewBrowseRateLimiter()
	apiLimiter := middleware.NewAPIRateLimiter()
	exportLimiter := middleware.NewExportRateLimiter()

	api := app.Group("/api")

	// Creator routes
	api.Get("/creators", h.Creator.List, browseLimiter.Handler())
	api.Get("/creators/categories", h.Creator.Categories, browseLimiter.Handler())
	api.Get("/creators/:id", h.Creator.Get, browseLimiter.Handler())

	// Video routes
	api.Get("/videos", h.Video.List, browseLimiter.Handler())
	api.Get("/videos/:id", h.Video.Get, browseLimiter.Handler())

	// Dashboard and payment summary routes
	api.Get("/dashboard", h.Stats.Dashboard, apiLimiter.Handler())
	api.Get("/payments", h.Stats.Payments, apiLimiter.Handler())

	// Export route. Exports rebuild the full aggregation pipeline, so the
	// limit is tighter than the browse routes.
	api.Get("/export", h.Export.Export, exportLimiter.Handler())
}
