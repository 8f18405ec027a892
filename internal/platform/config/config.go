package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	PostgresDSN     string        `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr        string        `env:"HTTP_ADDR"            envDefault:":8080"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	QueryTimeout    time.Duration `env:"QUERY_TIMEOUT"        envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL"            envDefault:"info"`
	LogDevelopment  bool          `env:"LOG_DEVELOPMENT"      envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the service configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS (%d) exceeds DB_MAX_OPEN_CONNS (%d)", cfg.MaxIdleConns, cfg.MaxOpenConns)
	}
	if cfg.QueryTimeout <= 0 {
		return Config{}, fmt.Errorf("QUERY_TIMEOUT must be positive, got %s", cfg.QueryTimeout)
	}
	return cfg, nil
}
