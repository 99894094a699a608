package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Base URL of the pizzeria API the storefront talks to.
	APIBaseURL string `env:"PIZZERIA_API_URL" envDefault:"http://localhost:8080/api"`

	// Every outbound call is bounded by this timeout.
	HTTPTimeout time.Duration `env:"PIZZERIA_HTTP_TIMEOUT" envDefault:"10s"`

	// Path of the local SQLite file holding the cart snapshot and auth
	// token. Empty means <user config dir>/pizzeria/storefront.db.
	DataPath string `env:"PIZZERIA_DATA" envDefault:""`

	DeliveryFeeCents int64 `env:"PIZZERIA_DELIVERY_FEE_CENTS" envDefault:"299"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.DataPath = filepath.Join(dir, "pizzeria", "storefront.db")
	}

	return cfg, nil
}
