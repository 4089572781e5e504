package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxPerBatch != 150 {
		t.Errorf("MaxPerBatch = %d", cfg.MaxPerBatch)
	}
	if cfg.MaxTokens != 200000 {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}
	if cfg.RequestTimeout != 300*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.RequestsPerMinute != 0 {
		t.Errorf("RequestsPerMinute = %d, want unset", cfg.RequestsPerMinute)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DOCTRANS_API_KEY", "sk-test")
	t.Setenv("DOCTRANS_MODEL", "gpt-4o")
	t.Setenv("DOCTRANS_MAX_LINES_PER_BATCH", "25")
	t.Setenv("DOCTRANS_REQUEST_TIMEOUT", "30s")
	t.Setenv("DOCTRANS_RPM", "60")
	t.Setenv("DOCTRANS_REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIKey != "sk-test" || cfg.Model != "gpt-4o" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxPerBatch != 25 {
		t.Errorf("MaxPerBatch = %d", cfg.MaxPerBatch)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.RequestsPerMinute != 60 {
		t.Errorf("RequestsPerMinute = %d", cfg.RequestsPerMinute)
	}
	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DOCTRANS_MAX_LINES_PER_BATCH", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}
