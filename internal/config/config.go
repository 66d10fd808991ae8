package config

import (
	"os"
	"strconv"
	"time"

	"eventease/internal/backend"
	"eventease/internal/session"
)

// Config содержит конфигурацию приложения
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	Backend backend.Config
	Session session.Config
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Backend: backend.Config{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:8081"),
			Timeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SEC", 30)) * time.Second,
		},

		Session: session.Config{
			ValkeyAddr:     getEnv("VALKEY_ADDR", ""),
			ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
			CookieName:     getEnv("SESSION_COOKIE", "eventease_session"),
			TTL:            time.Duration(getEnvInt("SESSION_TTL_MIN", 720)) * time.Minute,
		},
	}
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
