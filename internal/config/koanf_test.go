// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithKoanfDefaults(t *testing.T) {
	// Not parallel: reads the process environment.
	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.EBird.BaseURL != "https://api.ebird.org/v2" {
		t.Errorf("EBird.BaseURL = %q", cfg.EBird.BaseURL)
	}
	if cfg.EBird.CircuitBreaker {
		t.Errorf("EBird.CircuitBreaker should default off")
	}
	if cfg.EBird.Timeout != 30*time.Second {
		t.Errorf("EBird.Timeout = %s, want 30s", cfg.EBird.Timeout)
	}
	if !cfg.Security.RateLimitEnabled {
		t.Errorf("Security.RateLimitEnabled should default on")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadWithKoanfEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("EBIRD_BASE_URL", "https://ebird.test/v2")
	t.Setenv("EBIRD_CIRCUIT_BREAKER", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.EBird.BaseURL != "https://ebird.test/v2" {
		t.Errorf("EBird.BaseURL = %q", cfg.EBird.BaseURL)
	}
	if !cfg.EBird.CircuitBreaker {
		t.Errorf("EBird.CircuitBreaker should be enabled via env")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	origins := cfg.Security.CORSAllowedOrigins
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", origins)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 4242
ebird:
  timeout: 5s
logging:
  format: console
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 4242 {
		t.Errorf("Server.Port = %d, want 4242 from file", cfg.Server.Port)
	}
	if cfg.EBird.Timeout != 5*time.Second {
		t.Errorf("EBird.Timeout = %s, want 5s from file", cfg.EBird.Timeout)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console from file", cfg.Logging.Format)
	}
	// Untouched values keep their defaults.
	if cfg.EBird.BaseURL != "https://api.ebird.org/v2" {
		t.Errorf("EBird.BaseURL = %q, want default", cfg.EBird.BaseURL)
	}
}

func TestLoadWithKoanfEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 4242\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "5151")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Server.Port != 5151 {
		t.Errorf("Server.Port = %d, want env override 5151", cfg.Server.Port)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := defaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty base url", func(c *Config) { c.EBird.BaseURL = "" }},
		{"bad base url scheme", func(c *Config) { c.EBird.BaseURL = "ftp://ebird.org" }},
		{"non-positive timeout", func(c *Config) { c.EBird.Timeout = 0 }},
		{"rate limit without requests", func(c *Config) { c.Security.RateLimitRequests = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation failure")
			}
		})
	}
}

func TestServerConfigAddr(t *testing.T) {
	t.Parallel()

	c := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := c.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
