package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artflaneur/contentfactory/internal/config"
	"github.com/artflaneur/contentfactory/internal/middleware"
	"github.com/artflaneur/contentfactory/internal/ratelimit"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers, limiter ratelimit.Store, cfg *config.Config) {
	// API group with versioning
	api := app.Group("/api/v1")

	// Health check endpoint
	api.Get("/health", handlers.HealthCheck)

	// Generation endpoint, rate limited per client
	api.Post("/generate", middleware.RateLimit(middleware.RateLimitConfig{
		Store:  limiter,
		Limit:  cfg.GenerateRateLimit,
		Window: cfg.RateLimitWindow,
		Prefix: cfg.RedisPrefix + "generate",
	}), handlers.Generate)

	// URL validation endpoint, a looser budget than generate
	api.Post("/validate", middleware.RateLimit(middleware.RateLimitConfig{
		Store:  limiter,
		Limit:  cfg.ValidateRateLimit,
		Window: cfg.RateLimitWindow,
		Prefix: cfg.RedisPrefix + "validate",
	}), handlers.ValidateURLs)

	// History endpoints
	posts := api.Group("/history")
	{
		posts.Get("", handlers.ListHistory)
		posts.Get("/:id", handlers.GetHistory)
		posts.Get("/:id/preview", handlers.PreviewHistory)
	}

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	{
		admin.Delete("/history/:id", handlers.DeleteHistory)
	}

	// Wrong-method requests to the POST-only endpoints get 405, not the
	// 404 catch-all below.
	api.Use("/generate", postOnly)
	api.Use("/validate", postOnly)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}

// postOnly rejects any method other than POST. The POST routes are
// registered earlier in the stack, so matching requests never reach this.
func postOnly(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return c.Next()
	}
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"error": "Method not allowed",
	})
}
