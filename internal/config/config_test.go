package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Limits.MaxFileSize != 20*1024*1024 {
		t.Errorf("max file size = %d, want 20MB", cfg.Limits.MaxFileSize)
	}
	if cfg.Limits.MaxDimension != 20000 {
		t.Errorf("max dimension = %d, want 20000", cfg.Limits.MaxDimension)
	}
	if cfg.Limits.MaxFiles != 50 {
		t.Errorf("max files = %d, want 50", cfg.Limits.MaxFiles)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis addr = %q, want empty (cache disabled by default)", cfg.Redis.Addr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("MAX_FILES", "5")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Limits.MaxFileSize != 1048576 {
		t.Errorf("max file size = %d, want 1048576", cfg.Limits.MaxFileSize)
	}
	if cfg.Limits.MaxFiles != 5 {
		t.Errorf("max files = %d, want 5", cfg.Limits.MaxFiles)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Supabase.URL != "https://example.supabase.co" {
		t.Errorf("supabase url = %q", cfg.Supabase.URL)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Limits.MaxFileSize != 20*1024*1024 {
		t.Errorf("max file size = %d, want the default", cfg.Limits.MaxFileSize)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v, want the default", cfg.Server.ReadTimeout)
	}
}
