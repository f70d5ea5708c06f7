// Package config loads application settings from defaults, a .env file,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. MUSIC_VIBE_ADDR.
const EnvPrefix = "MUSIC_VIBE"

var (
	// ErrInvalidDelay is returned when a configured delay is negative.
	ErrInvalidDelay = errors.New("delay must not be negative")

	// ErrInvalidAddr is returned when the listen address is empty.
	ErrInvalidAddr = errors.New("listen address must not be empty")
)

// Config holds application configuration.
type Config struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	Addr     string `mapstructure:"addr"`

	AnalysisDelay time.Duration `mapstructure:"analysis_delay"`
	ConnectDelay  time.Duration `mapstructure:"connect_delay"`
	HistoryLimit  int           `mapstructure:"history_limit"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration. If path is non-empty the file is read as well;
// environment variables always take precedence over file values.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("analysis_delay", 2*time.Second)
	v.SetDefault("connect_delay", 1500*time.Millisecond)
	v.SetDefault("history_limit", 10)
	v.SetDefault("session_ttl", 24*time.Hour)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the app cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrInvalidAddr
	}
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("analysis_delay %s: %w", c.AnalysisDelay, ErrInvalidDelay)
	}
	if c.ConnectDelay < 0 {
		return fmt.Errorf("connect_delay %s: %w", c.ConnectDelay, ErrInvalidDelay)
	}
	return nil
}
