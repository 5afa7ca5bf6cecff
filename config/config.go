// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fighter-arena/storage"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"5200"`
	DatabaseDriver string   `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL    string   `env:"DATABASE_URL,required,notEmpty"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Empty disables bearer auth
	ServiceToken string `env:"ARENA_SERVICE_TOKEN"`
	BodyLimitMB  int    `env:"BODY_LIMIT_MB" envDefault:"10"`

	PurgeInterval  time.Duration `env:"PURGE_INTERVAL" envDefault:"1h"`
	PurgeRetention time.Duration `env:"PURGE_RETENTION" envDefault:"720h"`

	R2 R2
}

type R2 struct {
	AccountID       string `env:"CLOUDFLARE_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	AccessKeySecret string `env:"R2_ACCESS_KEY_SECRET"`
	Bucket          string `env:"R2_BUCKET_NAME"`
	CDNBaseURL      string `env:"CDN_BASE_URL"`
}

func (r R2) Storage() storage.R2Config {
	return storage.R2Config{
		AccountID:       r.AccountID,
		AccessKeyID:     r.AccessKeyID,
		AccessKeySecret: r.AccessKeySecret,
		Bucket:          r.Bucket,
		CDNBaseURL:      r.CDNBaseURL,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	switch cfg.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", cfg.DatabaseDriver)
	}
	if cfg.BodyLimitMB <= 0 {
		return nil, fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", cfg.BodyLimitMB)
	}
	return &cfg, nil
}

func (c *Config) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
