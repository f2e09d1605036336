package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Cover struct {
		SortColumn  string `env:"COVER_SORT_COLUMN" env-default:"created_at"`
		SortOrder   string `env:"COVER_SORT_ORDER" env-default:"DESC"`
		WarmMinutes int    `env:"COVER_WARM_MINUTES" env-default:"15"`
	}
	RateLimit struct {
		PerSeconds int `env:"RATE_LIMIT_PER_SECONDS" env-default:"1"`
		Burst      int `env:"RATE_LIMIT_BURST" env-default:"10"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass,
		c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}
