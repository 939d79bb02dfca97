package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// #region config
// Config holds the settings shared by the evalfield commands.
type Config struct {
	DBPath    string `env:"EVALFIELD_DB" envDefault:"evalfield.db" validate:"required"`
	LogLevel  string `env:"EVALFIELD_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"EVALFIELD_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Addr      string `env:"EVALFIELD_ADDR" envDefault:"localhost:50061" validate:"required,hostname_port"`
	Digest    string `env:"EVALFIELD_DIGEST" envDefault:"MD5" validate:"oneof=MD5 SHA-1 SHA-256"`
	// Workers bounds how many files check validates at once.
	Workers int `env:"EVALFIELD_WORKERS" envDefault:"4" validate:"min=1,max=64"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		DBPath:    "evalfield.db",
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      "localhost:50061",
		Digest:    "MD5",
		Workers:   4,
	}
}

// #endregion config

// #region load
var configValidate = validator.New()

// Load parses the environment over the defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// #endregion load
