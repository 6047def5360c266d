package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"github.com/stephyg0/christmas/internal/domain"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port      string `env:"PORT"`
	StaticDir string `env:"STATIC_DIR"`

	// Security
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Rate Limiting
	RateLimitAPI rate.Limit `env:"RATE_LIMIT_API"`
	RateLimitWS  rate.Limit `env:"RATE_LIMIT_WS"`

	// Logging
	LogLevel string `env:"LOG_LEVEL"`

	// WebSocket
	MaxMessageSize    int `env:"MAX_MESSAGE_SIZE"`
	HeartbeatSeconds  int `env:"HEARTBEAT_INTERVAL_SECONDS"`
	HeartbeatInterval time.Duration
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Port:              "8080",
		StaticDir:         "./client",
		AllowedOrigins:    []string{"*"},
		RateLimitAPI:      10,
		RateLimitWS:       5,
		LogLevel:          "info", // Options: debug, info, silent
		MaxMessageSize:    domain.MaxMessageSize,
		HeartbeatSeconds:  int(domain.HeartbeatInterval / time.Second),
		HeartbeatInterval: domain.HeartbeatInterval,
	}
}

// LoadFromEnv overlays environment variables on the defaults.
// Unset variables keep their default; a value that does not parse is an error,
// and non-positive limits fall back to the default.
func LoadFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize(DefaultConfig())
	return cfg, nil
}

func (c *Config) normalize(def *Config) {
	c.AllowedOrigins = cleanOrigins(c.AllowedOrigins)
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = def.AllowedOrigins
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.RateLimitAPI <= 0 {
		c.RateLimitAPI = def.RateLimitAPI
	}
	if c.RateLimitWS <= 0 {
		c.RateLimitWS = def.RateLimitWS
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = def.MaxMessageSize
	}
	if c.HeartbeatSeconds <= 0 {
		c.HeartbeatSeconds = def.HeartbeatSeconds
	}
	c.HeartbeatInterval = time.Duration(c.HeartbeatSeconds) * time.Second
}

// OriginAllowed checks if the origin is in the allowed list.
// An empty origin (same-origin or non-browser client) is always allowed.
func (c *Config) OriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// cleanOrigins trims entries and drops empty ones
func cleanOrigins(origins []string) []string {
	result := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			result = append(result, o)
		}
	}
	return result
}
