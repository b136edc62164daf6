package redis

import (
	"testing"
	"time"

	"github.com/lmedina-dev/tastebite-backend/pkg/config"
)

func TestCartKeyNamespacing(t *testing.T) {
	c := &Client{}
	if got := c.CartKey("sess-1"); got != "tb:cart:sess-1" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := c.CartKey(""); got != "tb:cart" {
		t.Fatalf("empty session id should be skipped, got %q", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	cfg := config.RedisConfig{
		URL:         "redis://localhost:6379/2",
		PoolSize:    7,
		DialTimeout: 3 * time.Second,
	}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2 from url, got %d", opts.DB)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size from config, got %d", opts.PoolSize)
	}
}
