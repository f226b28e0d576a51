package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Completion backend
	AIProvider  string        `json:"ai_provider"`
	AIApiKey    string        `json:"ai_api_key"`
	AIBaseURL   string        `json:"ai_base_url"`
	AIModel     string        `json:"ai_model"`
	AIMaxTokens int           `json:"ai_max_tokens"`
	AITimeout   time.Duration `json:"ai_timeout"`

	// URL liveness checks
	URLCheckTimeout time.Duration `json:"url_check_timeout"`

	// Rate limiting. An empty RedisURL selects the in-memory store.
	RedisURL          string        `json:"redis_url"`
	RedisPrefix       string        `json:"redis_prefix"`
	GenerateRateLimit int           `json:"generate_rate_limit"`
	ValidateRateLimit int           `json:"validate_rate_limit"`
	RateLimitWindow   time.Duration `json:"rate_limit_window"`

	// History storage
	HistoryPath string `json:"history_path"`

	// CloudFlare R2 archive (optional)
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 120*time.Second),

		AIProvider:  getEnv("AI_PROVIDER", "anthropic"),
		AIApiKey:    getEnv("AI_API_KEY", ""),
		AIBaseURL:   getEnv("AI_BASE_URL", ""),
		AIModel:     getEnv("AI_MODEL", "claude-opus-4-5-20251101"),
		AIMaxTokens: getEnvAsInt("AI_MAX_TOKENS", 4096),
		AITimeout:   getEnvAsDuration("AI_TIMEOUT", 60*time.Second),

		URLCheckTimeout: getEnvAsDuration("URL_CHECK_TIMEOUT", 4500*time.Millisecond),

		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPrefix:       getEnv("REDIS_PREFIX", "content-factory:ratelimit:"),
		GenerateRateLimit: getEnvAsInt("GENERATE_RATE_LIMIT", 10),
		ValidateRateLimit: getEnvAsInt("VALIDATE_RATE_LIMIT", 30),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),

		HistoryPath: getEnv("HISTORY_PATH", "./data/history"),

		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
