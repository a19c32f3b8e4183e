package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"KueBunda"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Session struct {
		// Single operator account. These defaults match the sheet of
		// paper taped to the bakery laptop; override them in .env.
		Username string        `envconfig:"ADMIN_USERNAME" default:"admin"`
		Password string        `envconfig:"ADMIN_PASSWORD" default:"admin123"`
		Secret   string        `envconfig:"SESSION_SECRET" default:"kue-bunda-dev-secret"`
		TTL      time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	}

	Seed struct {
		DemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
