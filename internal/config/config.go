package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

const (
	BackendMemory     = "memory"
	BackendRepository = "repository"
	BackendQuery      = "query"
	BackendRedis      = "redis"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort       string   `env:"HTTP_PORT" envDefault:"8080"`
	HTTPBasePath   string   `env:"HTTP_BASE_PATH" envDefault:"/"`
	StorageBackend string   `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatabaseURL    string   `env:"DATABASE_URL"`
	RedisAddr      string   `env:"REDIS_ADDR"`
	RedisPassword  string   `env:"REDIS_PASSWORD"`
	RedisDB        int      `env:"REDIS_DB" envDefault:"0"`
	KafkaBrokers   []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic     string   `env:"KAFKA_TOPIC" envDefault:"messages.created"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate comprueba que el backend elegido tenga lo que necesita.
func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case BackendMemory:
	case BackendRepository, BackendQuery:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=%s", c.StorageBackend)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORAGE_BACKEND=%s", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}
