package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"   env-default:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	// Persistence
	DatabasePath string `env:"DATABASE_PATH" env-default:"abbr-trainer.db"`
	ProgressKey  string `env:"PROGRESS_KEY"  env-default:"menuProgressV1"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  env-default:"info"` // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" env-default:"json"` // json or text

	// Quiz
	RandomSeed  uint64 `env:"RANDOM_SEED"  env-default:"0"`   // 0 = seed from the clock
	ExportLimit int    `env:"EXPORT_LIMIT" env-default:"500"` // characters shown by export
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddress == "" {
		errs = append(errs, errors.New("SERVER_ADDRESS is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if c.ProgressKey == "" {
		errs = append(errs, errors.New("PROGRESS_KEY is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "json" && f != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	if c.ExportLimit < 0 {
		errs = append(errs, fmt.Errorf("EXPORT_LIMIT must not be negative, got %d", c.ExportLimit))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}
