package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artflaneur/contentfactory/internal/logger"
)

// LoggerConfig configures the request logger.
type LoggerConfig struct {
	// Logger overrides the global logger. Optional.
	Logger *zerolog.Logger

	// SkipPaths are request paths that are not logged. Health probes fire
	// often enough to drown real traffic in the log.
	SkipPaths []string
}

// NewLogger returns a middleware that logs one line per request with
// method, path, status, client IP and latency. Handler errors are attached
// to the line and passed through to the error handler.
func NewLogger(cfg LoggerConfig) fiber.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	return func(c *fiber.Ctx) error {
		for _, p := range cfg.SkipPaths {
			if strings.HasPrefix(c.Path(), p) {
				return c.Next()
			}
		}

		start := time.Now()
		err := c.Next()

		event := log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("ip", ClientIdentifier(c)).
			Dur("latency", time.Since(start))
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("request")

		return err
	}
}

// RequestLogger is the standard request logger with health probes skipped.
func RequestLogger() fiber.Handler {
	return NewLogger(LoggerConfig{
		SkipPaths: []string{"/api/v1/health"},
	})
}
