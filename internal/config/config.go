package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "fsa.yaml"

// Environment overrides, applied on top of the file.
const (
	EnvMemoize        = "FSA_MEMOIZE"
	EnvMaxInputLength = "FSA_MAX_INPUT_LENGTH"
	EnvLogLevel       = "FSA_LOG_LEVEL"
	EnvRedisURL       = "FSA_REDIS_URL"
	EnvAddr           = "FSA_ADDR"
)

// Defaults.
const (
	DefaultAddr        = ":8080"
	DefaultLogLevel    = "warn"
	DefaultCachePrefix = "fsa:decision:"
	DefaultCacheTTL    = time.Hour
)

// Config holds the settings shared by every fsa command.
type Config struct {
	// Sources are automaton configurations loaded when none are given on the command line.
	Sources        []string     `yaml:"sources" json:"sources"`
	Memoize        bool         `yaml:"memoize" json:"memoize"`
	MaxInputLength int          `yaml:"max_input_length" json:"max_input_length"`
	Concurrency    int          `yaml:"concurrency" json:"concurrency"`
	LogLevel       string       `yaml:"log_level" json:"log_level"`
	Cache          CacheConfig  `yaml:"cache" json:"cache"`
	Server         ServerConfig `yaml:"server" json:"server"`
}

// CacheConfig selects the decision cache backend. An empty RedisURL disables caching.
type CacheConfig struct {
	RedisURL string `yaml:"redis_url" json:"redis_url"`
	Prefix   string `yaml:"prefix" json:"prefix"`
	// TTL is a Go duration string such as "30m".
	TTL string `yaml:"ttl" json:"ttl"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Cache: CacheConfig{
			Prefix: DefaultCachePrefix,
			TTL:    DefaultCacheTTL.String(),
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads a YAML or JSON configuration file, chosen by extension, over the
// defaults and applies environment overrides. A missing file is only an error
// when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if strings.ToLower(filepath.Ext(path)) == ".json" {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if val := os.Getenv(EnvMemoize); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMemoize, err)
		}
		c.Memoize = b
	}
	if val := os.Getenv(EnvMaxInputLength); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxInputLength, err)
		}
		c.MaxInputLength = n
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv(EnvRedisURL); val != "" {
		c.Cache.RedisURL = val
	}
	if val := os.Getenv(EnvAddr); val != "" {
		c.Server.Addr = val
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxInputLength < 0 {
		return fmt.Errorf("max_input_length must not be negative, got %d", c.MaxInputLength)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses Cache.TTL. An empty value means DefaultCacheTTL.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return DefaultCacheTTL, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("cache.ttl: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("cache.ttl must not be negative, got %s", d)
	}
	return d, nil
}
