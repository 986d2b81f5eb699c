// Package config loads fincalc settings from a YAML file, an optional .env
// file and FINCALC_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "fincalc.yaml"

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all fincalc settings.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Capacity int    `yaml:"capacity"` // requests per window
	Window   string `yaml:"window"`
}

// CacheConfig selects where computed plans are cached.
type CacheConfig struct {
	Backend    string `yaml:"backend"` // memory, redis
	RedisAddr  string `yaml:"redis_addr"`
	TTL        string `yaml:"ttl"`
	MaxEntries int    `yaml:"max_entries"` // memory backend only
}

// HistoryConfig bounds the in-memory calculation history.
type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Capacity: 60,
			Window:   "1m",
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			RedisAddr:  "localhost:6379",
			TTL:        "1h",
			MaxEntries: 10000,
		},
		History: HistoryConfig{
			Limit: 1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FINCALC_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("FINCALC_CACHE"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("FINCALC_REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("FINCALC_CACHE_TTL"); v != "" {
		c.Cache.TTL = v
	}
	if v := os.Getenv("FINCALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FINCALC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("FINCALC_RATE_LIMIT"); v != "" {
		// "0" disables limiting; anything unparseable is left for Validate to ignore
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimit.Capacity = n
			c.RateLimit.Enabled = n > 0
		}
	}
}

// Validate rejects settings the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache max_entries cannot be negative, got %d", c.Cache.MaxEntries)
	}
	if c.RateLimit.Enabled && c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate limit capacity must be positive, got %d", c.RateLimit.Capacity)
	}

	durations := map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"rate_limit.window":       c.RateLimit.Window,
		"cache.ttl":               c.Cache.TTL,
	}
	for name, v := range durations {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 15*time.Second)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 15*time.Second)
}

func (c *Config) GetIdleTimeout() time.Duration {
	return parseDuration(c.Server.IdleTimeout, 60*time.Second)
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

func (c *Config) GetRateLimitWindow() time.Duration {
	return parseDuration(c.RateLimit.Window, time.Minute)
}

// GetCacheTTL returns the cache entry lifetime; zero means no expiry.
func (c *Config) GetCacheTTL() time.Duration {
	return parseDuration(c.Cache.TTL, 0)
}
