package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Renderer != RendererVector {
		t.Fatalf("default renderer = %q", cfg.Renderer)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Load()

	cfg := base
	cfg.Renderer = "svg"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown renderer to fail")
	}

	cfg = base
	cfg.MaxBodyBytes = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected tiny body limit to fail")
	}

	cfg = base
	cfg.ExportTimeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected negative timeout to fail")
	}
}
