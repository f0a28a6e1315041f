package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration shared by all commands. Command-line
// flags override these values.
type Config struct {
	Addr        string `env:"BINGO_ADDR" envDefault:":8080"`
	LogLevel    string `env:"BINGO_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"BINGO_LOG_FILE"`
	Lang        string `env:"BINGO_LANG"`
	Seed        int64  `env:"BINGO_SEED"`
	MaxAttempts int    `env:"BINGO_MAX_ATTEMPTS" envDefault:"1000"`
	Sound       bool   `env:"BINGO_SOUND" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
