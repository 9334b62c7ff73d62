// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store drivers.
const (
	DriverNone     = ""
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all service settings.
type Config struct {
	Port           string   `envconfig:"PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	StoreDriver  string `envconfig:"STORE_DRIVER"`
	DBConnString string `envconfig:"DB_CONN_STRING"`
	DBName       string `envconfig:"DB_NAME" default:"alaska_news"`
	PostgresDSN  string `envconfig:"POSTGRES_DSN"`

	TideInterval    time.Duration `envconfig:"TIDE_INTERVAL" default:"60s"`
	WeatherInterval time.Duration `envconfig:"WEATHER_INTERVAL" default:"10m"`
	ViewTTL         time.Duration `envconfig:"VIEW_TTL" default:"10m"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"realtime-changes"`
	KafkaGroupID string   `envconfig:"KAFKA_GROUP_ID" default:"alaska-weather"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads configuration from the environment, applying defaults where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NotificationsEnabled reports whether realtime change notifications should be consumed.
func (c *Config) NotificationsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverNone:
	case DriverMongo:
		if c.DBConnString == "" {
			return errors.New("DB_CONN_STRING is required for the mongo store")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.TideInterval <= 0 {
		return errors.New("TIDE_INTERVAL should be positive")
	}
	if c.WeatherInterval <= 0 {
		return errors.New("WEATHER_INTERVAL should be positive")
	}
	if c.ViewTTL <= 0 {
		return errors.New("VIEW_TTL should be positive")
	}

	return nil
}
