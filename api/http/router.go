package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/STIWARI-IN/AI-ML/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, pages *handlers.PageHandler, advisors *handlers.AdvisorHandler, health *handlers.HealthHandler) {
	// HTML pages
	app.Get("/", pages.Index)
	app.Get("/advisors/:slug", pages.Advisor)

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/advisors")
	a.Get("/", advisors.List)
	a.Post("/:slug/advice", advisors.Advise)
}
