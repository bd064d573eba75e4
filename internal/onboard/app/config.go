package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	Env       string `env:"ENV" envDefault:"dev"`         // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json, text

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"memory"` // memory, sqlite
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"onboard.db"`
	PepperFile   string `env:"PEPPER_FILE" envDefault:"pepper"`

	// SessionSecret signs session tokens. When empty the secret is read
	// from SessionSecretFile, which is created on first start.
	SessionSecret     string        `env:"SESSION_SECRET"`
	SessionSecretFile string        `env:"SESSION_SECRET_FILE" envDefault:"session.secret"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure      bool          `env:"COOKIE_SECURE" envDefault:"false"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("DATABASE_FILE is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.StoreDriver, StoreDriverMemory, StoreDriverSQLite)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionSecret == "" && c.SessionSecretFile == "" {
		return fmt.Errorf("one of SESSION_SECRET or SESSION_SECRET_FILE is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
