package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
}

// UpstreamConfig points the gateway at the remote buy01 API.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=http://localhost:8081"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// SessionConfig controls the browser-facing session cookie.
type SessionConfig struct {
	CookieName   string `env:"SESSION_COOKIE_NAME,   default=buy01_sid"`
	CookieSecure bool   `env:"SESSION_COOKIE_SECURE, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
