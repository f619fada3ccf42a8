package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"rifa"`
	// DBAutoMigrate runs embedded migrations on start.
	DBAutoMigrate bool `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// ReservationTTL is the hold applied uniformly to every reservation.
	ReservationTTL time.Duration `env:"RESERVATION_TTL" envDefault:"15m"`
	// SweepSpec is the cron spec for the expiry sweeper.
	SweepSpec string `env:"SWEEP_SPEC" envDefault:"@every 1m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads environment variables into Config with sane defaults for local dev.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.ReservationTTL <= 0 {
		return nil, fmt.Errorf("RESERVATION_TTL must be positive, got %s", cfg.ReservationTTL)
	}
	return cfg, nil
}

// DatabaseURL builds the Postgres connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
