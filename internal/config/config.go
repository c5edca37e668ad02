// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading. Values come
// from an optional YAML file, then a .env file, then the process
// environment, each layer overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when no layer sets a value.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultRateLimit  = 120
	DefaultRateWindow = time.Minute
)

// Content formats accepted by CONTENT_FORMAT.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Config holds all application configuration values. It is not modified
// after Load returns.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Content service
	ServiceDomain string // e.g. "example" for example.microcms.io
	BaseURL       string // derived from ServiceDomain unless set explicitly
	APIKey        string
	Timeout       time.Duration
	Sanitize      bool   // pass detail bodies through the HTML sanitizer
	ContentFormat string // "html" (rich text) or "markdown"

	// Per-IP request limit for the news routes.
	RateLimit  int
	RateWindow time.Duration
	TrustProxy bool // key the limiter on X-Forwarded-For / X-Real-IP
}

// Load reads configuration, applying defaults for development where
// appropriate. Returns an error if a value cannot be parsed or if the
// content service is not configured in production mode.
func Load() (*Config, error) {
	file, err := LoadConfigFile(os.Getenv(ConfigFileEnv))
	if err != nil {
		return nil, err
	}

	// godotenv never overrides variables already present in the process
	// environment, so real env vars keep precedence over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	l := loader{file: file.values()}

	cfg := &Config{
		Host: l.get("APP_HOST", "0.0.0.0"),
		Port: l.get("APP_PORT", "8080"),
		Env:  l.get("APP_ENV", "development"),

		ServiceDomain: l.get("MICROCMS_SERVICE_DOMAIN", ""),
		BaseURL:       strings.TrimRight(l.get("MICROCMS_BASE_URL", ""), "/"),
		APIKey:        l.get("MICROCMS_API_KEY", ""),
	}

	if cfg.BaseURL == "" && cfg.ServiceDomain != "" {
		cfg.BaseURL = "https://" + cfg.ServiceDomain + ".microcms.io"
	}

	if cfg.Timeout, err = l.duration("CMS_TIMEOUT", DefaultTimeout); err != nil {
		return nil, err
	}
	if cfg.Sanitize, err = l.bool("CONTENT_SANITIZE", false); err != nil {
		return nil, err
	}
	switch cfg.ContentFormat = strings.ToLower(l.get("CONTENT_FORMAT", FormatHTML)); cfg.ContentFormat {
	case FormatHTML, FormatMarkdown:
	default:
		return nil, fmt.Errorf("CONTENT_FORMAT must be %q or %q, got %q", FormatHTML, FormatMarkdown, cfg.ContentFormat)
	}
	if cfg.RateLimit, err = l.int("RATE_LIMIT", DefaultRateLimit); err != nil {
		return nil, err
	}
	if cfg.RateWindow, err = l.duration("RATE_WINDOW", DefaultRateWindow); err != nil {
		return nil, err
	}
	if cfg.TrustProxy, err = l.bool("TRUST_PROXY", false); err != nil {
		return nil, err
	}

	if cfg.Env == "production" {
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("MICROCMS_SERVICE_DOMAIN or MICROCMS_BASE_URL must be set in production")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("MICROCMS_API_KEY must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsMarkdown reports whether item bodies are authored as Markdown.
func (c *Config) IsMarkdown() bool {
	return c.ContentFormat == FormatMarkdown
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// loader resolves a key from the environment first, then the config file.
type loader struct {
	file map[string]string
}

func (l loader) get(key, fallback string) string {
	if v := envOrDefault(key, ""); v != "" {
		return v
	}
	if v := l.file[key]; v != "" {
		return v
	}
	return fallback
}

func (l loader) duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := l.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func (l loader) int(key string, fallback int) (int, error) {
	raw := l.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func (l loader) bool(key string, fallback bool) (bool, error) {
	raw := l.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
