package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr        string `env:"SUDOKU_ADDR" envDefault:":8080"`
	Development bool   `env:"DEVELOPMENT"`
	LogFile     string `env:"LOG_FILE"`

	Database Database
	JWT      JWT
	Cookies  Cookies
}

// Load reads the whole configuration from the environment. Key material
// referenced through *_FILE variables is read eagerly so that a broken
// deployment fails at startup rather than on the first request.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse environment: %w", err)
	}
	if err := cfg.Database.resolve(); err != nil {
		return nil, err
	}
	if err := cfg.JWT.loadKeys(); err != nil {
		return nil, err
	}
	if err := cfg.Cookies.parseSameSite(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
