package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PASSFORGE_DEFAULT_LENGTH", "")
	t.Setenv("PASSFORGE_DEFAULT_WORDS", "")
	t.Setenv("PASSFORGE_HISTORY_LIMIT", "")
	t.Setenv("PASSFORGE_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, 16, cfg.DefaultLength)
	assert.Equal(t, 4, cfg.DefaultWords)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PASSFORGE_DEFAULT_LENGTH", "24")
	t.Setenv("PASSFORGE_DEFAULT_WORDS", "6")
	t.Setenv("PASSFORGE_HISTORY_LIMIT", "25")
	t.Setenv("PASSFORGE_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, 24, cfg.DefaultLength)
	assert.Equal(t, 6, cfg.DefaultWords)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("PASSFORGE_DEFAULT_LENGTH", "not-a-number")
	t.Setenv("PASSFORGE_HISTORY_LIMIT", "-5")

	cfg := Load()

	assert.Equal(t, 16, cfg.DefaultLength)
	assert.Equal(t, 10, cfg.HistoryLimit)
}
