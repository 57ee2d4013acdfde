package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Store backends selectable at startup.
const (
	StoreFixture  = "fixture"
	StorePostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Fieldhand"`
		Port int    `envconfig:"PORT" default:"8080"`
		// Store picks the repository strategy: "fixture" runs on
		// seeded in-memory data, "postgres" on a real database.
		Store string `envconfig:"STORE" default:"fixture"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"fieldhand"`
	}

	Auth struct {
		// Secret verifies optional bearer tokens whose "name" claim
		// becomes the displayed user name. Empty disables parsing.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	User struct {
		DisplayName string `envconfig:"USER_DISPLAY_NAME" default:"Farmer"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"exports"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
