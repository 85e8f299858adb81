package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"tinyblog/app/repositories"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable, e.g. BLOG_ADDR.
const EnvPrefix = "BLOG"

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

// Config holds the server settings.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:"127.0.0.1:8080"`
	Store           string        `envconfig:"STORE" default:"memory"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads envFile into the environment without overriding variables that
// are already set, then fills a Config from BLOG_* variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !(errors.Is(err, fs.ErrNotExist) && envFile == DefaultEnvFile) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if !slices.Contains(repositories.Backends, c.Store) {
		return fmt.Errorf("store must be one of %v, got %q", repositories.Backends, c.Store)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("log format must be json or console, got %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
