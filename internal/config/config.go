package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIBaseURL string
	LogLevel   string

	RequestTimeoutSeconds  int
	RefreshIntervalSeconds int

	ExportDir string

	MetricsPort string

	BreakerEnabled          bool
	BreakerMinRequests      int
	BreakerFailureRatio     float64
	BreakerOpenTimeoutSecs  int
	BreakerHalfOpenMaxCalls int

	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() Config {
	return Config{
		APIBaseURL: mustEnv("API_BASE_URL", "http://localhost:8000"),
		LogLevel:   mustEnv("LOG_LEVEL", "info"),

		RequestTimeoutSeconds:  mustEnvInt("REQUEST_TIMEOUT_SECONDS", 30),
		RefreshIntervalSeconds: mustEnvInt("REFRESH_INTERVAL_SECONDS", 60),

		ExportDir: mustEnv("EXPORT_DIR", "./data/exports"),

		MetricsPort: mustEnv("METRICS_PORT", "9090"),

		BreakerEnabled:          mustEnvBool("GATEWAY_BREAKER_ENABLED", true),
		BreakerMinRequests:      mustEnvInt("GATEWAY_BREAKER_MIN_REQUESTS", 5),
		BreakerFailureRatio:     mustEnvFloat("GATEWAY_BREAKER_FAILURE_RATIO", 0.5),
		BreakerOpenTimeoutSecs:  mustEnvInt("GATEWAY_BREAKER_OPEN_TIMEOUT_SECONDS", 30),
		BreakerHalfOpenMaxCalls: mustEnvInt("GATEWAY_BREAKER_HALF_OPEN_MAX_CALLS", 2),

		RateLimitPerSecond: mustEnvFloat("GATEWAY_RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:     mustEnvInt("GATEWAY_RATE_LIMIT_BURST", 20),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
