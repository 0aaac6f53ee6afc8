package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the YouSpace service.
// Environment variables are parsed from the YOUSPACE_ prefix, e.g.
// YOUSPACE_HTTP_PORT, YOUSPACE_DB_DRIVER.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store selection: memory, postgres or sqlite
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"youspace.db"`

	// Text/vision generation service (any OpenAI-compatible endpoint)
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:""`
	StoryModel    string `envconfig:"STORY_MODEL" default:"gpt-4o-mini"`
	CaptionModel  string `envconfig:"CAPTION_MODEL" default:"glm-4v"`

	// Story generation bounds
	GenerationTimeoutSeconds int `envconfig:"GENERATION_TIMEOUT_SECONDS" default:"30"`
	StoryMaxTokens           int `envconfig:"STORY_MAX_TOKENS" default:"2000"`
	CaptionMaxTokens         int `envconfig:"CAPTION_MAX_TOKENS" default:"300"`

	// Object storage (Supabase Storage)
	SupabaseURL        string `envconfig:"SUPABASE_URL" default:""`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_KEY" default:""`
	SupabaseBucket     string `envconfig:"SUPABASE_BUCKET" default:"photos"`
}

// ResolveDefaults validates driver choices and their required settings.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "memory":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("YOUSPACE_POSTGRES_DSN required for DB_DRIVER=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("YOUSPACE_SQLITE_PATH required for DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.GenerationTimeoutSeconds <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// New creates a Config by parsing environment variables. A .env file in
// the working directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("YOUSPACE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("story_model", cfg.StoryModel).
		Str("caption_model", cfg.CaptionModel).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Bool("supabase_configured", cfg.SupabaseURL != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config suitable for unit tests: in-process
// store, no external services.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:                 8080,
		DBDriver:                 "memory",
		StoryModel:               "gpt-4o-mini",
		CaptionModel:             "glm-4v",
		GenerationTimeoutSeconds: 5,
		StoryMaxTokens:           2000,
		CaptionMaxTokens:         300,
		SupabaseBucket:           "photos",
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
