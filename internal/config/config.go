package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const maxWorkers = 256

type Config struct {
	LogLevel       string `env:"LOG_LEVEL" default:"info"`
	LogFormat      string `env:"LOG_FORMAT" default:"text"`
	Format         string `env:"REVIEWLENS_FORMAT" default:"json"`
	Workers        int    `env:"REVIEWLENS_WORKERS" default:"1"`
	NegationWindow int    `env:"REVIEWLENS_NEGATION_WINDOW" default:"0"`
	LexiconPath    string `env:"REVIEWLENS_LEXICON"`
	Punkt          bool   `env:"REVIEWLENS_PUNKT" default:"false"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges. It is called by Load and again after flags
// have been applied.
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case "json", "text":
	default:
		return fmt.Errorf("REVIEWLENS_FORMAT must be json or text, got %q", cfg.Format)
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	if cfg.Workers < 1 || cfg.Workers > maxWorkers {
		return fmt.Errorf("REVIEWLENS_WORKERS must be between 1 and %d, got %d", maxWorkers, cfg.Workers)
	}

	if cfg.NegationWindow < 0 {
		return errors.New("REVIEWLENS_NEGATION_WINDOW must not be negative")
	}

	return nil
}
