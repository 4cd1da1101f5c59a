package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DOCUMENTS_DATABASE_URL", "RENDER_TIMEOUT", "AI_SERVICE_URL", "REDIS_URL", "EXPORT_CACHE_TTL", "JWT_SECRET", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "3000" || c.RenderTimeout != 30*time.Second || c.AIServiceURL != "http://ai-service:8000" {
		t.Errorf("defaults = %+v", c)
	}
	if c.ExportCacheTTL != 10*time.Minute || c.LogLevel != slog.LevelInfo || c.RedisURL != "" || c.JWTSecret != "" {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("RENDER_TIMEOUT", "45s")
	t.Setenv("EXPORT_CACHE_TTL", "-1m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "s3cret")
	c := Load()
	if c.Port != "8081" || c.RenderTimeout != 45*time.Second || c.JWTSecret != "s3cret" {
		t.Errorf("overrides = %+v", c)
	}
	if c.ExportCacheTTL != 10*time.Minute {
		t.Errorf("negative ttl accepted: %s", c.ExportCacheTTL)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("level = %s", c.LogLevel)
	}
	t.Setenv("LOG_LEVEL", "chatty")
	if Load().LogLevel != slog.LevelInfo {
		t.Error("invalid level not defaulted")
	}
}
