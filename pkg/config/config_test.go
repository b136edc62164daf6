package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if !cfg.App.IsProd() {
		t.Fatal("expected IsProd() to be true")
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if !cfg.DB.IsSQLite() {
		t.Fatalf("expected default driver sqlite, got %q", cfg.DB.Driver)
	}
	if got := cfg.Cart.SnapshotTTL; got != 72*time.Hour {
		t.Fatalf("expected default cart snapshot TTL 72h, got %v", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBDriver, "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown db driver to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvDBDSN, "file:tastebite_test.db?mode=memory&cache=shared")
	t.Setenv(EnvDBDriver, "sqlite")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
}
