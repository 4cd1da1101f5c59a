package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	ChromePath    string
	RenderTimeout time.Duration
	AIServiceURL  string
	AILanguage    string
	// Optional; exports are not cached when empty.
	RedisURL       string
	ExportCacheTTL time.Duration
	// Optional; identity falls back to the X-User-ID header when empty.
	JWTSecret string
	LogLevel  slog.Level
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    getEnv("DOCUMENTS_DATABASE_URL", ""),
		ChromePath:     getEnv("CHROME_PATH", ""),
		RenderTimeout:  getDuration("RENDER_TIMEOUT", 30*time.Second),
		AIServiceURL:   getEnv("AI_SERVICE_URL", "http://ai-service:8000"),
		AILanguage:     getEnv("AI_LANGUAGE", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		ExportCacheTTL: getDuration("EXPORT_CACHE_TTL", 10*time.Minute),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		LogLevel:       getLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go duration strings ("45s", "2m"). Invalid or
// non-positive values fall back to the default.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getLevel(key string, defaultValue slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(getEnv(key, "")))); err != nil {
		return defaultValue
	}
	return l
}
