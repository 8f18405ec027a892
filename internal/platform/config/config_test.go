package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://stats@localhost/stats?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.MaxOpenConns != 20 || cfg.MaxIdleConns != 10 {
		t.Fatalf("unexpected pool sizes: %+v", cfg)
	}
	if cfg.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %s", cfg.ConnMaxLifetime)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Fatalf("expected 5s query timeout, got %s", cfg.QueryTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogDevelopment {
		t.Fatalf("unexpected log settings: %+v", cfg)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when POSTGRES_DSN is empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://x")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("QUERY_TIMEOUT", "2s")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.QueryTimeout != 2*time.Second || !cfg.LogDevelopment {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_IdleAboveOpen(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://x")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_MAX_IDLE_CONNS", "10")

	if _, err := Load(); err == nil {
		t.Fatalf("expected pool size validation error")
	}
}
