package config

import (
	"os"
	"strconv"
)

type Config struct {
	DefaultLength int
	DefaultWords  int
	HistoryLimit  int
	LogLevel      string
}

func Load() Config {
	return Config{
		DefaultLength: getEnvInt("PASSFORGE_DEFAULT_LENGTH", 16),
		DefaultWords:  getEnvInt("PASSFORGE_DEFAULT_WORDS", 4),
		HistoryLimit:  getEnvInt("PASSFORGE_HISTORY_LIMIT", 10),
		LogLevel:      getEnv("PASSFORGE_LOG_LEVEL", "warn"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
