package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, parsed from environment
// variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8080"`
	AppEnv          string        `env:"APP_ENV"          envDefault:"development"`
	MongoURI        string        `env:"MONGO_URI"        envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string        `env:"MONGO_DATABASE"   envDefault:"college"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenIssuer     string        `env:"TOKEN_ISSUER"     envDefault:"college-portal-api"`
	SessionTTL      time.Duration `env:"SESSION_TTL"      envDefault:"24h"`
	RememberTTL     time.Duration `env:"REMEMBER_TTL"     envDefault:"720h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from the environment. It fails when no
// signing secret is configured; there is deliberately no fallback secret.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsProduction reports whether the process runs in production mode,
// controlling the session cookie Secure attribute.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 bytes")
	}
	if c.SessionTTL <= 0 || c.RememberTTL <= 0 {
		return fmt.Errorf("session TTLs must be positive")
	}

	return nil
}
