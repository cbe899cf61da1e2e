package config

import (
	"fmt"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port           int      `env:"PORT" envDefault:"5000"`
	DatabasePath   string   `env:"DATABASE_PATH" envDefault:"./brainbox.db"`
	JWTSecret      string   `env:"JWT_PASSWORD" validate:"required"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, preloading a .env file
// when one exists. The JWT signing secret has no default on purpose:
// startup fails if JWT_PASSWORD is unset.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration (is JWT_PASSWORD set?): %w", err)
	}

	return cfg, nil
}
