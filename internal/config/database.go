package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	// URLOverride wins over the individual POSTGRES_* variables when set.
	URLOverride  string `env:"DATABASE_URL"`
	Username     string `env:"POSTGRES_USER"`
	Password     string `env:"POSTGRES_PASSWORD"`
	PasswordFile string `env:"POSTGRES_PASSWORD_FILE"`
	Host         string `env:"POSTGRES_HOST"`
	Port         uint16 `env:"POSTGRES_PORT" envDefault:"5432"`
	DBName       string `env:"POSTGRES_DB"`
	SSLMode      string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func (c *Database) resolve() error {
	if c.URLOverride != "" {
		return nil
	}
	if c.Username == "" {
		return fmt.Errorf("no DATABASE_URL or POSTGRES_USER env variable set")
	}
	if c.Password == "" {
		if c.PasswordFile == "" {
			return fmt.Errorf("no POSTGRES_PASSWORD or POSTGRES_PASSWORD_FILE env variable set")
		}
		data, err := os.ReadFile(c.PasswordFile)
		if err != nil {
			return fmt.Errorf("unable to read from password file: %w", err)
		}
		c.Password = strings.TrimSpace(string(data))
	}
	if c.Host == "" {
		return fmt.Errorf("no POSTGRES_HOST env variable set")
	}
	if c.DBName == "" {
		return fmt.Errorf("no POSTGRES_DB env variable set")
	}
	return nil
}

func (c Database) URL() string {
	if c.URLOverride != "" {
		return c.URLOverride
	}
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username,
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

func (c Database) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c Database) PoolConfig() (*pgxpool.Config, error) {
	if c.URLOverride != "" {
		return pgxpool.ParseConfig(c.URLOverride)
	}
	return pgxpool.ParseConfig(c.DSN())
}
