package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8090"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Base URLs of the remote services the storefront consumes.
	UserServiceURL    string `env:"USER_SERVICE_URL,    default=http://localhost:8081/api"`
	CatalogServiceURL string `env:"CATALOG_SERVICE_URL, default=http://localhost:8082/api"`
	OrderServiceURL   string `env:"ORDER_SERVICE_URL,   default=http://localhost:8083/api"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=10s"`

	Store StoreConfig
}

// StoreConfig selects where the session credential is persisted.
type StoreConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"CREDENTIAL_STORE,     default=file"`
	Dir     string `env:"CREDENTIAL_STORE_DIR, default=.storefront"`

	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
