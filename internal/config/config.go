// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Package config defines the application configuration and loads it from
// layered sources (defaults, YAML file, environment variables) via koanf.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	EBird    EBirdConfig    `koanf:"ebird"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EBirdConfig configures the upstream forwarder.
type EBirdConfig struct {
	// BaseURL is the eBird API root, without a trailing slash.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds a single upstream call.
	Timeout time.Duration `koanf:"timeout"`

	// CircuitBreaker enables the breaker around the forwarder. Off by
	// default: with it off the proxy relays every upstream outcome
	// unconditionally.
	CircuitBreaker bool `koanf:"circuit_breaker"`
}

// SecurityConfig configures the inbound request protections.
type SecurityConfig struct {
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	RateLimitEnabled   bool          `koanf:"rate_limit_enabled"`
	RateLimitRequests  int           `koanf:"rate_limit_requests"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.EBird.BaseURL == "" {
		return fmt.Errorf("ebird.base_url must not be empty")
	}
	parsed, err := url.Parse(c.EBird.BaseURL)
	if err != nil {
		return fmt.Errorf("ebird.base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("ebird.base_url must use http or https, got %q", parsed.Scheme)
	}

	if c.EBird.Timeout <= 0 {
		return fmt.Errorf("ebird.timeout must be positive, got %s", c.EBird.Timeout)
	}

	if c.Security.RateLimitEnabled {
		if c.Security.RateLimitRequests < 1 {
			return fmt.Errorf("security.rate_limit_requests must be at least 1, got %d",
				c.Security.RateLimitRequests)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s",
				c.Security.RateLimitWindow)
		}
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "":
	default:
		return fmt.Errorf("logging.level %q is not a valid zerolog level", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console", "":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
