package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL,     default=http://localhost:8000/api/v1"`
	Env            string        `env:"ENV,              default=development"`
	LogLevel       string        `env:"LOG_LEVEL,        default=info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,  default=15s"`

	// SessionStore selects the token persistence backend: file or redis.
	SessionStore string `env:"SESSION_STORE, default=file"`
	// SessionFile overrides the state file location; empty means the
	// conventional path under the user config dir.
	SessionFile string `env:"SESSION_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR,        default=localhost:6379"`
	DB   int           `env:"REDIS_DB,          default=0"`
	TTL  time.Duration `env:"REDIS_SESSION_TTL, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.SessionStore != "file" && cfg.SessionStore != "redis" {
		return nil, fmt.Errorf("SESSION_STORE must be file or redis, got %q", cfg.SessionStore)
	}
	return &cfg, nil
}
