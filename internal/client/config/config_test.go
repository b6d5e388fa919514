package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.StatusTTL)
	assert.Equal(t, 1200*time.Millisecond, cfg.RedirectDelay)
	assert.Equal(t, "todo.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TODO_API_URL", "https://todo.example.org/api")
	t.Setenv("TODO_REQUEST_TIMEOUT", "3s")
	t.Setenv("TODO_STATUS_TTL", "1s")
	t.Setenv("TODO_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://todo.example.org/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Second, cfg.StatusTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1200*time.Millisecond, cfg.RedirectDelay)
}

func TestEnvBadDurationIsAnError(t *testing.T) {
	t.Setenv("TODO_REQUEST_TIMEOUT", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
}
