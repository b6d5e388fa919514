// Package config loads runtime settings for the todoterm CLI.
//
// Precedence, lowest to highest: built-in defaults, environment variables
// with the TODO_ prefix, command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the root of the Todo service API, e.g.
	// "http://localhost:8080/api".
	APIBaseURL string `env:"API_URL"`

	// RequestTimeout bounds a single API request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StatusTTL is how long a status message stays visible.
	StatusTTL time.Duration `env:"STATUS_TTL"`

	// RedirectDelay is the pause between a successful login and switching
	// to the tasks view.
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`

	// DatabasePath is the local session database file.
	DatabasePath string `env:"DB_PATH"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.StatusTTL = 5 * time.Second
	c.RedirectDelay = 1200 * time.Millisecond
	c.DatabasePath = "todo.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TODO_"}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
