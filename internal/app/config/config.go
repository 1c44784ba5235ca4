// Package config loads the application configuration from environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains all server configuration parameters.
type Config struct {
	Port          string   `env:"PORT" envDefault:"8080"`
	RunMigrations bool     `env:"RUN_MIGRATIONS" envDefault:"false"`
	Database      Database `envPrefix:"DB_"`
	Redis         Redis    `envPrefix:"REDIS_"`
	Session       Session  `envPrefix:"SESSION_"`
	Recipe        Recipe   `envPrefix:"RECIPE_"`
}

// Database contains database connection parameters.
// Instance is the unix-socket connection path used on managed platforms;
// when set it takes precedence over Host/Port.
type Database struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	Instance string `env:"INSTANCE_CONNECTION_NAME"`
}

// Redis contains session store connection parameters.
type Redis struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
}

// Session contains session signing and lifetime parameters.
type Session struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

// Recipe contains recipe-feature parameters.
type Recipe struct {
	// RequireParent enforces the parent-existence check when branching.
	RequireParent bool `env:"REQUIRE_PARENT" envDefault:"true"`
}

// New loads configuration from environment variables.
// If no session secret is provided, a random one is generated for this
// process; issued sessions then do not survive a restart.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Session.Secret == "" {
		secret, err := generateSecret()
		if err != nil {
			return nil, err
		}
		cfg.Session.Secret = secret
		slog.Warn("SESSION_SECRET is not set; generated a random secret for this process")
	}

	return &cfg, nil
}

// generateSecret returns a 128-character hex secret from crypto/rand.
func generateSecret() (string, error) {
	b := make([]byte, 64)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
