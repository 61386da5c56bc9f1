package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Addr     string `env:"ADDR,      default=127.0.0.1:4173"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
}

type BackendConfig struct {
	BaseURL        string `env:"BACKEND_BASE_URL, default=http://localhost:8080/api/v1"`
	TimeoutSeconds int    `env:"BACKEND_TIMEOUT_SECONDS, default=10"`
}

// SessionConfig selects where the session record lives. "file" keeps it on
// the local disk; "redis" targets kiosk deployments with shared state.
type SessionConfig struct {
	Store    string `env:"SESSION_STORE, default=file"`
	FilePath string `env:"SESSION_FILE,  default=.vetclinic/session.json"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	Key  string `env:"REDIS_SESSION_KEY, default=vetclinic:session"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
