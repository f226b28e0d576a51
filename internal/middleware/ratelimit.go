package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artflaneur/contentfactory/internal/logger"
	"github.com/artflaneur/contentfactory/internal/ratelimit"
)

// RateLimitConfig defines the config for the rate-limit middleware
type RateLimitConfig struct {
	Store  ratelimit.Store
	Limit  int
	Window time.Duration
	// Prefix namespaces the counter so endpoints get independent budgets.
	Prefix string
}

// ClientIdentifier extracts the client identity used as the rate-limit key.
// Proxy headers are preferred over the socket address.
func ClientIdentifier(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 && ips[0] != "" {
		return ips[0]
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit creates a fixed-window rate-limit handler. The store failing is
// treated as allow: deterring abuse is not worth failing real traffic.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := cfg.Prefix + ":" + ClientIdentifier(c)

		res, err := cfg.Store.Check(c.Context(), key, cfg.Limit, cfg.Window)
		if err != nil {
			logger.Get().Error().Err(err).Str("key", key).Msg("Rate limit check failed")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Set("X-RateLimit-Reset", res.ResetAt.UTC().Format(time.RFC3339))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds() + 1)
			if retryAfter < 1 {
				retryAfter = 1
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      "Too many requests. Please try again later.",
				"retryAfter": retryAfter,
			})
		}

		return c.Next()
	}
}
