package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port             string
	DatabaseDSN      string
	DefaultPageSize  int
	HotLookbackDays  int
	SidebarCacheTTLH int
}

func Load() Config {
	return Config{
		Port:             envOr("PORT", "8080"),
		DatabaseDSN:      envOr("DATABASE_DSN", "host=localhost port=5432 user=postgres password=postgres dbname=qa_forum sslmode=disable"),
		DefaultPageSize:  envOrInt("DEFAULT_PAGE_SIZE", 10),
		HotLookbackDays:  envOrInt("HOT_LOOKBACK_DAYS", 7),
		SidebarCacheTTLH: envOrInt("SIDEBAR_CACHE_TTL_HOURS", 24),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
