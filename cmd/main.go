package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artflaneur/contentfactory/internal/ai"
	"github.com/artflaneur/contentfactory/internal/api"
	"github.com/artflaneur/contentfactory/internal/config"
	"github.com/artflaneur/contentfactory/internal/history"
	"github.com/artflaneur/contentfactory/internal/logger"
	"github.com/artflaneur/contentfactory/internal/middleware"
	"github.com/artflaneur/contentfactory/internal/pipeline"
	"github.com/artflaneur/contentfactory/internal/ratelimit"
	"github.com/artflaneur/contentfactory/internal/urlcheck"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: logOutput(cfg),
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting application...")

	// Rate-limit store: Redis when configured, in-memory otherwise
	var limiter ratelimit.Store
	if cfg.RedisURL != "" {
		redisStore, err := ratelimit.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis rate limiter")
		}
		limiter = redisStore
		log.Info().Msg("Using Redis rate limiter")
	} else {
		limiter = ratelimit.NewMemoryStore()
		log.Info().Msg("Using in-memory rate limiter")
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing rate limiter")
		}
	}()

	// Optional R2 archive for generated posts
	var archiver *history.Archiver
	archiveCfg := history.ArchiveConfig{
		Endpoint:  cfg.R2Endpoint,
		AccessKey: cfg.R2AccessKey,
		SecretKey: cfg.R2SecretKey,
		Bucket:    cfg.R2Bucket,
	}
	if archiveCfg.Enabled() {
		var err error
		archiver, err = history.NewArchiver(context.Background(), archiveCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize archive uploader")
		}
		log.Info().Str("bucket", cfg.R2Bucket).Msg("Archive uploads enabled")
	}

	store, err := history.NewStore(cfg.HistoryPath, archiver)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize history store")
	}

	completer, err := newCompleter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize completion backend")
	}

	urlValidator := urlcheck.NewValidatorWithTimeout(cfg.URLCheckTimeout)
	svc := pipeline.New(completer, urlValidator, store)
	handlers := api.NewHandlers(svc, urlValidator, store)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Setup API routes
	api.SetupRoutes(app, handlers, limiter, cfg)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func logOutput(cfg *config.Config) string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	return "stdout"
}

// newCompleter selects the completion backend by provider name. The mock
// backend exists for local development without an API key.
func newCompleter(cfg *config.Config) (ai.Completer, error) {
	settings := ai.Settings{
		Provider:  cfg.AIProvider,
		APIKey:    cfg.AIApiKey,
		BaseURL:   cfg.AIBaseURL,
		Model:     cfg.AIModel,
		MaxTokens: cfg.AIMaxTokens,
	}

	switch cfg.AIProvider {
	case "openai":
		return ai.NewOpenAIClient(settings)
	case "mock":
		return ai.MockCompleter{}, nil
	default:
		return ai.NewAnthropicClient(settings, cfg.AITimeout), nil
	}
}
