package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.HTTP.Port != "3000" {
		t.Fatalf("default port = %q, want 3000", cfg.HTTP.Port)
	}
	if cfg.JWT.TokenTTL != 7*24*time.Hour {
		t.Fatalf("default token ttl = %v, want 168h", cfg.JWT.TokenTTL)
	}
	if cfg.Database.URL == "" {
		t.Fatal("expected a database URL to be assembled from parts")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load to fail without JWT_SECRET")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("JWT_TOKEN_TTL", "24h")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.HTTP.Port != "8081" {
		t.Fatalf("port = %q, want 8081", cfg.HTTP.Port)
	}
	if cfg.JWT.TokenTTL != 24*time.Hour {
		t.Fatalf("token ttl = %v, want 24h", cfg.JWT.TokenTTL)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/app?sslmode=disable" {
		t.Fatalf("database url = %q", cfg.Database.URL)
	}
	if cfg.Address() != "0.0.0.0:8081" {
		t.Fatalf("address = %q", cfg.Address())
	}
}

func TestGetDuration_PlainSeconds(t *testing.T) {
	t.Setenv("SOME_DURATION", "45")
	if got := getDuration("SOME_DURATION", time.Second); got != 45*time.Second {
		t.Fatalf("getDuration = %v, want 45s", got)
	}
}
