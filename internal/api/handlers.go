package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artflaneur/contentfactory/internal/history"
	"github.com/artflaneur/contentfactory/internal/logger"
	"github.com/artflaneur/contentfactory/internal/middleware"
	"github.com/artflaneur/contentfactory/internal/models"
	"github.com/artflaneur/contentfactory/internal/pipeline"
	"github.com/artflaneur/contentfactory/internal/share"
	"github.com/artflaneur/contentfactory/internal/urlcheck"
)

type Handlers struct {
	pipeline  *pipeline.Service
	validator *urlcheck.Validator
	store     *history.Store
	validate  *middleware.Validator
}

func NewHandlers(svc *pipeline.Service, urlValidator *urlcheck.Validator, store *history.Store) *Handlers {
	return &Handlers{
		pipeline:  svc,
		validator: urlValidator,
		store:     store,
		validate:  middleware.NewValidator(),
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Generate handles POST /api/v1/generate
func (h *Handlers) Generate(c *fiber.Ctx) error {
	log := logger.Get()
	start := time.Now()

	var req models.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("Invalid request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: " + err.Error(),
		})
	}

	if err := h.validate.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": middleware.ValidationFields(err),
		})
	}

	log.Info().
		Str("category", string(req.Category)).
		Str("audience", req.Audience).
		Int("source_urls", len(req.SourceURLs)).
		Msg("Received generate request")

	post, err := h.pipeline.Generate(c.Context(), &req)
	if err != nil {
		if errors.Is(err, pipeline.ErrMissingContactEmail) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Press release requires a contact email. Provide one in the organization profile.",
			})
		}
		log.Error().
			Err(err).
			Str("category", string(req.Category)).
			Dur("duration", time.Since(start)).
			Msg("Generation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate post",
		})
	}

	log.Info().
		Str("id", post.ID).
		Str("framework", post.FrameworkUsed).
		Dur("duration", time.Since(start)).
		Msg("Post generated")

	return c.JSON(post)
}

// ValidateURLs handles POST /api/v1/validate
func (h *Handlers) ValidateURLs(c *fiber.Ctx) error {
	var req struct {
		URLs []string `json:"urls"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: expected a JSON object with a urls array",
		})
	}

	if len(req.URLs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "urls array is required",
		})
	}

	urls := urlcheck.Normalize(req.URLs)
	outcomes := h.validator.ValidateAll(c.Context(), urls)
	valid, invalid := urlcheck.Partition(outcomes)

	return c.JSON(fiber.Map{
		"valid":   valid,
		"invalid": invalid,
		"results": outcomes,
	})
}

// ListHistory handles GET /api/v1/history
func (h *Handlers) ListHistory(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 20
	}

	posts, err := h.store.List(c.Context(), page, pageSize)
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error listing posts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list posts",
		})
	}

	return c.JSON(fiber.Map{
		"page":      page,
		"page_size": pageSize,
		"total":     len(posts),
		"items":     posts,
	})
}

// GetHistory handles GET /api/v1/history/:id
func (h *Handlers) GetHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Post ID is required",
		})
	}

	post, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		logger.Get().Error().Err(err).Str("id", id).Msg("Error getting post")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	return c.JSON(post)
}

// PreviewHistory handles GET /api/v1/history/:id/preview
func (h *Handlers) PreviewHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Post ID is required",
		})
	}

	post, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	html, err := share.RenderPost(post)
	if err != nil {
		logger.Get().Error().Err(err).Str("id", id).Msg("Error rendering preview")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render preview",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// DeleteHistory handles DELETE /api/v1/admin/history/:id
func (h *Handlers) DeleteHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Post ID is required",
		})
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		logger.Get().Error().Err(err).Str("id", id).Msg("Error deleting post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete post",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "deleted",
		"message": "Post deleted successfully",
	})
}
